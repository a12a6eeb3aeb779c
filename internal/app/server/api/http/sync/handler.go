package sync

import (
	"context"

	"churchdata/internal/domain/sync"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const msgRecordsRequired = "Records array is required"

type Handler struct {
	service      sync.Servicer
	log          *slog.Logger
	middleware   huma.Middlewares
	maxBodyBytes int64
}

func NewHandler(service sync.Servicer, log *slog.Logger, middleware huma.Middlewares, maxBodyBytes int64) *Handler {
	return &Handler{
		service:      service,
		log:          log.With("component", "sync_handler"),
		middleware:   middleware,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.reconcileOp(), h.reconcile)
}

func (h *Handler) reconcile(ctx context.Context, input *reconcileInput) (*reconcileOutput, error) {
	batch, err := sync.DecodeBatch(input.Body.Records)
	if err != nil {
		return nil, huma.Error400BadRequest(msgRecordsRequired)
	}

	report, err := h.service.Reconcile(ctx, batch)
	if err != nil {
		h.log.Error("bulk sync failed", "error", err)
		return nil, huma.Error500InternalServerError("bulk sync failed")
	}

	return &reconcileOutput{Body: report}, nil
}
