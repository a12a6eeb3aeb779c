package auth

import (
	"context"
	"errors"

	"churchdata/internal/domain/admin"
	"churchdata/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgInvalidCredentials  = "Invalid credentials"
	msgAdminExists         = "Admin already exists"
	msgAdminCreated        = "Admin created successfully"
)

type Handler struct {
	service           admin.Servicer
	session           session.Servicer
	allowRegistration bool
	log               *slog.Logger
	middleware        huma.Middlewares
}

func NewHandler(service admin.Servicer, session session.Servicer, allowRegistration bool, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:           service,
		session:           session,
		allowRegistration: allowRegistration,
		log:               log.With("component", "auth_handler"),
		middleware:        middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	if h.allowRegistration {
		huma.Register(api, h.registerOp(), h.register)
	}
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	a, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			return nil, huma.Error400BadRequest(msgCredentialsRequired)
		case errors.Is(err, admin.ErrInvalidCredentials):
			return nil, huma.Error401Unauthorized(msgInvalidCredentials)
		default:
			h.log.Error("login failed", "error", err)
			return nil, huma.Error500InternalServerError("login failed")
		}
	}

	token, expiresAt, err := h.session.Create(ctx, a.ID, a.Email)
	if err != nil {
		h.log.Error("failed to create session", "admin_id", a.ID, "error", err)
		return nil, huma.Error500InternalServerError("create session")
	}

	return &loginOutput{
		Body: LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			Admin:     AdminInfo{ID: a.ID, Email: a.Email},
		},
	}, nil
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	if input.Body.Email == "" || input.Body.Password == "" {
		return nil, huma.Error400BadRequest(msgCredentialsRequired)
	}

	a, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrAlreadyExists):
			return nil, huma.Error400BadRequest(msgAdminExists)
		case errors.Is(err, admin.ErrInvalidInput):
			return nil, huma.Error400BadRequest("Invalid email or password", err)
		default:
			h.log.Error("register failed", "error", err)
			return nil, huma.Error500InternalServerError("register failed")
		}
	}

	return &registerOutput{
		Body: RegisterResponse{
			Message: msgAdminCreated,
			Admin:   AdminInfo{ID: a.ID, Email: a.Email},
		},
	}, nil
}
