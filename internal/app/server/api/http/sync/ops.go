package sync

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) reconcileOp() huma.Operation {
	return huma.Operation{
		OperationID:  "sync-batch",
		Method:       http.MethodPost,
		Path:         "/api/sync",
		Summary:      "Пакетная синхронизация записей",
		Description:  "Принимает пакет записей с мобильного клиента. Каждая запись создается или перезаписывается, ошибки не прерывают пакет.",
		Tags:         []string{"sync"},
		MaxBodyBytes: h.maxBodyBytes,
		Middlewares:  h.middleware,
	}
}
