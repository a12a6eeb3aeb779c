package auth

import (
	"context"
	"net/http"
	"strings"

	"churchdata/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Auth struct {
	api     huma.API
	session session.Servicer
	log     *slog.Logger
}

func New(api huma.API, session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		api:     api,
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const ClaimsKey contextKey = "claims"

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			a.log.Debug("missing bearer token", "path", ctx.URL().Path)
			a.deny(ctx, "Access denied. No token provided.")
			return
		}

		claims, err := a.session.Validate(ctx.Context(), strings.TrimSpace(token))
		if err != nil {
			a.log.Debug("token rejected", "path", ctx.URL().Path, "error", err)
			a.deny(ctx, "Invalid token")
			return
		}

		next(huma.WithValue(ctx, ClaimsKey, claims))
	}
}

func (a *Auth) deny(ctx huma.Context, msg string) {
	if err := huma.WriteErr(a.api, ctx, http.StatusUnauthorized, msg); err != nil {
		a.log.Error("failed to write auth error", "error", err)
	}
}

// GetClaims возвращает данные токена, положенные middleware
func GetClaims(ctx context.Context) (*session.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*session.Claims)
	return claims, ok
}
