package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Recover перехватывает панику в обработчике операции и отвечает 500 в формате сервиса.
// chi middleware.Recoverer остается внешним уровнем для всего остального.
func Recover(api huma.API, log *slog.Logger) Func {
	log = log.With("component", "recover")
	return func(ctx huma.Context, next func(huma.Context)) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Error("panic in handler",
				"method", ctx.Method(),
				"path", ctx.URL().Path,
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()),
			)
			if err := huma.WriteErr(api, ctx, http.StatusInternalServerError, "panic"); err != nil {
				log.Error("failed to write panic response", "error", err)
			}
		}()
		next(ctx)
	}
}
