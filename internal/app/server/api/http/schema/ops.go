package schema

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) activeOp() huma.Operation {
	return huma.Operation{
		OperationID: "schema-active",
		Method:      http.MethodGet,
		Path:        "/api/schema",
		Summary:     "Активная схема формы",
		Description: "Если ни одна версия не сохранена, возвращается встроенная схема версии 1.",
		Tags:        []string{"schema"},
		Middlewares: h.public,
	}
}

func (h *Handler) historyOp() huma.Operation {
	return huma.Operation{
		OperationID: "schema-history",
		Method:      http.MethodGet,
		Path:        "/api/schema/history",
		Summary:     "Все версии схемы",
		Tags:        []string{"schema"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) activateOp() huma.Operation {
	return huma.Operation{
		OperationID:   "schema-activate",
		Method:        http.MethodPost,
		Path:          "/api/schema",
		Summary:       "Сохранить новую версию схемы",
		Description:   "Новая версия становится активной, предыдущие деактивируются.",
		Tags:          []string{"schema"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.protected,
	}
}
