package sync

import (
	"encoding/json"

	"churchdata/internal/domain/sync"
)

type reconcileInput struct {
	Body reconcileRequest
}

// reconcileRequest records разбирается вручную: пустой или не-массив дает 400
type reconcileRequest struct {
	Records json.RawMessage `json:"records,omitempty" doc:"Записи с мобильного клиента"`
}

type reconcileOutput struct {
	Body *sync.Report
}
