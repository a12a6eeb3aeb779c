package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	ServiceName    = "Church Data Collection API"
	ServiceVersion = "1.0.0"
)

// Pinger проверяет доступность хранилища. nil - проверка пропускается.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
	now        func() time.Time
}

func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		middleware: middleware,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.indexOp(), h.index)
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) index(_ context.Context, _ *struct{}) (*indexOutput, error) {
	return &indexOutput{
		Body: IndexResponse{
			Message: ServiceName,
			Version: ServiceVersion,
			Endpoints: map[string]string{
				"health":  "/health",
				"auth":    "/api/auth",
				"members": "/api/members",
				"sync":    "/api/sync",
				"schema":  "/api/schema",
			},
		},
	}, nil
}

func (h *Handler) healthCheck(ctx context.Context, _ *struct{}) (*Output, error) {
	h.log.Debug("health check request received")

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			h.log.Error("storage is unavailable", "error", err)
			return nil, huma.Error503ServiceUnavailable("storage is unavailable")
		}
	}

	return &Output{
		Body: Response{
			Status:    "ok",
			Timestamp: h.now(),
		},
	}, nil
}
