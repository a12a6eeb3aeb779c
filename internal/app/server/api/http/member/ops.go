package member

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "members-list",
		Method:      http.MethodGet,
		Path:        "/api/members",
		Summary:     "Список членов церкви",
		Tags:        []string{"members"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "members-find",
		Method:      http.MethodGet,
		Path:        "/api/members/{id}",
		Summary:     "Получить запись",
		Tags:        []string{"members"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "members-create",
		Method:        http.MethodPost,
		Path:          "/api/members",
		Summary:       "Создать запись",
		Description:   "Если id не передан, сервер генерирует UUID. Неизвестные поля сохраняются в metadata.",
		Tags:          []string{"members"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  h.maxBodyBytes,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:  "members-update",
		Method:       http.MethodPut,
		Path:         "/api/members/{id}",
		Summary:      "Обновить запись",
		Description:  "Переданные поля накладываются на существующую запись.",
		Tags:         []string{"members"},
		Security:     []map[string][]string{{"bearer": {}}},
		MaxBodyBytes: h.maxBodyBytes,
		Middlewares:  h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "members-delete",
		Method:      http.MethodDelete,
		Path:        "/api/members/{id}",
		Summary:     "Удалить запись",
		Tags:        []string{"members"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
