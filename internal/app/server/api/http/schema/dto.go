package schema

import (
	"encoding/json"

	"churchdata/internal/domain/schema"
)

type activeOutput struct {
	Body *schema.Version
}

type historyOutput struct {
	Body []schema.Version
}

type activateInput struct {
	Body activateRequest
}

// activateRequest elements разбирается вручную, чтобы отвечать 400, а не 422
type activateRequest struct {
	Elements json.RawMessage `json:"elements,omitempty" doc:"Массив описаний полей формы"`
}

type activateOutput struct {
	Body *schema.Version
}
