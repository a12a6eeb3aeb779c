package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) indexOp() huma.Operation {
	return huma.Operation{
		OperationID: "service-index",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Описание сервиса",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check endpoint",
		Description: "Returns the health status of the service",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
