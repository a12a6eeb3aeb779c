package schema

import (
	"context"
	"errors"

	"churchdata/internal/domain/schema"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const msgElementsRequired = "Elements array is required"

type Handler struct {
	service   schema.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

// NewHandler: чтение активной схемы публично, история и запись - под токеном
func NewHandler(service schema.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log.With("component", "schema_handler"),
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.activeOp(), h.active)
	huma.Register(api, h.historyOp(), h.history)
	huma.Register(api, h.activateOp(), h.activate)
}

func (h *Handler) active(ctx context.Context, _ *struct{}) (*activeOutput, error) {
	v, err := h.service.Active(ctx)
	if err != nil {
		h.log.Error("failed to get active schema", "error", err)
		return nil, huma.Error500InternalServerError("get schema")
	}
	return &activeOutput{Body: v}, nil
}

func (h *Handler) history(ctx context.Context, _ *struct{}) (*historyOutput, error) {
	versions, err := h.service.History(ctx)
	if err != nil {
		h.log.Error("failed to list schema versions", "error", err)
		return nil, huma.Error500InternalServerError("list schema versions")
	}
	return &historyOutput{Body: versions}, nil
}

func (h *Handler) activate(ctx context.Context, input *activateInput) (*activateOutput, error) {
	elements, err := schema.DecodeElements(input.Body.Elements)
	if err != nil {
		return nil, huma.Error400BadRequest(msgElementsRequired)
	}

	v, err := h.service.Activate(ctx, elements)
	if err != nil {
		if errors.Is(err, schema.ErrInvalidElements) {
			return nil, huma.Error400BadRequest(msgElementsRequired, err)
		}
		h.log.Error("failed to activate schema", "error", err)
		return nil, huma.Error500InternalServerError("activate schema")
	}
	return &activateOutput{Body: v}, nil
}
