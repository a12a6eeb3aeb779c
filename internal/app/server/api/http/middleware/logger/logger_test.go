package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, api := humatest.New(t)
	mw := New(log).Middleware()

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{mw},
	}, func(context.Context, *struct{}) (*struct{}, error) {
		return nil, nil
	})
	huma.Register(api, huma.Operation{
		OperationID: "missing",
		Method:      http.MethodGet,
		Path:        "/missing",
		Middlewares: huma.Middlewares{mw},
	}, func(context.Context, *struct{}) (*struct{}, error) {
		return nil, huma.Error404NotFound("nope")
	})

	tests := []struct {
		path   string
		status int
		level  string
	}{
		{path: "/ping", status: http.StatusNoContent, level: "INFO"},
		{path: "/missing", status: http.StatusNotFound, level: "WARN"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			buf.Reset()
			resp := api.Get(tt.path)
			assert.Equal(t, tt.status, resp.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "HTTP request", entry["msg"])
			assert.Equal(t, "http_logger", entry["component"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, tt.path, entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
		})
	}
}
