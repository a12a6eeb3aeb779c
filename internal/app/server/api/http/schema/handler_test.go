package schema

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"churchdata/internal/app/server/api/http/apierror"
	"churchdata/internal/domain/schema"

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

func (m *MockService) Active(ctx context.Context) (*schema.Version, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.Version), args.Error(1)
}

func (m *MockService) History(ctx context.Context) ([]schema.Version, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schema.Version), args.Error(1)
}

func (m *MockService) Activate(ctx context.Context, elements []schema.FieldDef) (*schema.Version, error) {
	args := m.Called(ctx, elements)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.Version), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_active(t *testing.T) {
	apierror.Install()
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	svc.On("Active", mock.Anything).Return(&schema.Version{Version: 1, Elements: schema.DefaultElements(), IsActive: true}, nil).Once()
	out, err := h.active(context.Background(), &struct{}{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Body.Version)

	svc.On("Active", mock.Anything).Return(nil, errors.New("db down")).Once()
	_, err = h.active(context.Background(), &struct{}{})
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	assert.Equal(t, apierror.InternalMessage, err.Error())
}

func TestHandler_activate(t *testing.T) {
	valid := json.RawMessage(`[{"name":"firstName","label":"First Name","type":"text","required":true}]`)

	tests := []struct {
		name     string
		elements json.RawMessage
		svcErr   error
		status   int
	}{
		{name: "missing", elements: nil, status: http.StatusBadRequest},
		{name: "not an array", elements: json.RawMessage(`{"name":"x"}`), status: http.StatusBadRequest},
		{name: "rejected by validation", elements: valid, svcErr: schema.ErrInvalidElements, status: http.StatusBadRequest},
		{name: "storage", elements: valid, svcErr: errors.New("db down"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			h := NewHandler(svc, slog.Default(), nil, nil)
			svc.On("Activate", mock.Anything, mock.Anything).Return(nil, tt.svcErr)

			input := &activateInput{}
			input.Body.Elements = tt.elements

			_, err := h.activate(context.Background(), input)
			assert.Equal(t, tt.status, statusOf(t, err))
		})
	}
}

func TestHandler_Routes(t *testing.T) {
	apierror.Install()
	cfg := huma.DefaultConfig("Test API", "1.0.0")
	cfg.CreateHooks = nil
	_, api := humatest.New(t, cfg)

	denyAll := func(ctx huma.Context, _ func(huma.Context)) {
		ctx.SetStatus(http.StatusUnauthorized)
	}

	svc := new(MockService)
	created := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	svc.On("Active", mock.Anything).Return(&schema.Version{ID: "s1", Version: 2, IsActive: true, CreatedAt: created,
		Elements: []schema.FieldDef{{Name: "firstName", Label: "First Name", Type: schema.TypeText, Required: true}}}, nil)

	NewHandler(svc, slog.Default(), nil, huma.Middlewares{denyAll}).SetupRoutes(api)

	resp := api.Get("/api/schema")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{
		"id": "s1",
		"version": 2,
		"elements": [{"name":"firstName","label":"First Name","type":"text","required":true}],
		"isActive": true,
		"createdAt": "2025-03-09T10:00:00Z"
	}`, resp.Body.String())

	resp = api.Get("/api/schema/history")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = api.Post("/api/schema", map[string]any{"elements": []any{}})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	svc.AssertNotCalled(t, "History", mock.Anything)
	svc.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
}
