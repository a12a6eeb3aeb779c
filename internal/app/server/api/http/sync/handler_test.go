package sync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"churchdata/internal/app/server/api/http/apierror"
	"churchdata/internal/domain/member"
	"churchdata/internal/domain/sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Reconcile(ctx context.Context, batch []member.RawRecord) (*sync.Report, error) {
	args := m.Called(ctx, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sync.Report), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_reconcile_InvalidBatch(t *testing.T) {
	tests := []struct {
		name    string
		records json.RawMessage
	}{
		{name: "missing", records: nil},
		{name: "null", records: json.RawMessage(`null`)},
		{name: "object", records: json.RawMessage(`{"id":"x"}`)},
		{name: "empty", records: json.RawMessage(`[]`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			h := NewHandler(svc, slog.Default(), nil, 0)

			input := &reconcileInput{}
			input.Body.Records = tt.records

			out, err := h.reconcile(context.Background(), input)
			assert.Nil(t, out)
			assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
			assert.Equal(t, msgRecordsRequired, err.Error())
			svc.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_reconcile_ServiceError(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, 0)
	svc.On("Reconcile", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	input := &reconcileInput{}
	input.Body.Records = json.RawMessage(`[{"id":"x"}]`)

	_, err := h.reconcile(context.Background(), input)
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}

func TestHandler_Routes(t *testing.T) {
	apierror.Install()
	cfg := huma.DefaultConfig("Test API", "1.0.0")
	cfg.CreateHooks = nil
	_, api := humatest.New(t, cfg)

	svc := new(MockService)
	NewHandler(svc, slog.Default(), nil, 2<<20).SetupRoutes(api)

	report := &sync.Report{
		Message:    "Sync completed",
		Total:      2,
		Successful: 1,
		Failed:     1,
		Results: sync.Results{
			Success: []sync.SuccessItem{{ID: "a", Action: sync.ActionCreated, Data: &member.Member{ID: "a"}}},
			Failed:  []sync.FailedItem{{ID: "", Error: "member id is required"}},
		},
	}
	svc.On("Reconcile", mock.Anything, mock.MatchedBy(func(batch []member.RawRecord) bool {
		return len(batch) == 2 && batch[0].ID() == "a" && batch[1].ID() == ""
	})).Return(report, nil)

	resp := api.Post("/api/sync", map[string]any{
		"records": []any{
			map[string]any{"id": "a", "firstName": "Ada", "lastName": "Obi"},
			map[string]any{"firstName": "No", "lastName": "Id"},
		},
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Sync completed", body["message"])
	assert.EqualValues(t, 2, body["total"])
	assert.EqualValues(t, 1, body["successful"])
	assert.EqualValues(t, 1, body["failed"])

	resp = api.Post("/api/sync", map[string]any{"records": []any{}})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Records array is required"}`, resp.Body.String())

	svc.AssertNumberOfCalls(t, "Reconcile", 1)
}
