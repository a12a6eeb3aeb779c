package member

import (
	"context"
	"errors"

	"churchdata/internal/domain/member"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	msgNotFound = "Member not found"
	msgDeleted  = "Member deleted successfully"
)

type Handler struct {
	service      member.Servicer
	log          *slog.Logger
	middleware   huma.Middlewares
	maxBodyBytes int64
}

func NewHandler(service member.Servicer, log *slog.Logger, mws huma.Middlewares, maxBodyBytes int64) *Handler {
	return &Handler{
		service:      service,
		log:          log.With("component", "member_handler"),
		middleware:   mws,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	members, err := h.service.List(ctx)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &listOutput{Body: members}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	m, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &output{Body: m}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	m, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &output{Body: m}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	m, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &output{Body: m}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.mapError(err)
	}
	return &deleteOutput{Body: deleteResponse{Message: msgDeleted}}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, member.ErrNotFound):
		return huma.Error404NotFound(msgNotFound)
	case errors.Is(err, member.ErrAlreadyExists):
		return huma.Error409Conflict("Member already exists")
	case errors.Is(err, member.ErrInvalidID), errors.Is(err, member.ErrInvalidData):
		return huma.Error400BadRequest("Invalid member data", err)
	default:
		h.log.Error("member request failed", "error", err)
		return huma.Error500InternalServerError("member request failed")
	}
}
