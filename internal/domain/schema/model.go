package schema

import (
	"time"
)

// Типы полей, которые умеет рисовать мобильное приложение
const (
	TypeText     = "text"
	TypeNumber   = "number"
	TypeDate     = "date"
	TypeTextarea = "textarea"
	TypeSelect   = "select"
	TypeBoolean  = "boolean"
)

var fieldTypes = map[string]struct{}{
	TypeText:     {},
	TypeNumber:   {},
	TypeDate:     {},
	TypeTextarea: {},
	TypeSelect:   {},
	TypeBoolean:  {},
}

// FieldDef описание одного поля формы
type FieldDef struct {
	Name        string       `json:"name"`
	Label       string       `json:"label"`
	Type        string       `json:"type"`
	Required    bool         `json:"required"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Conditional *Conditional `json:"conditional,omitempty"`
}

// Conditional - поле показывается, только если значение field равно value (или не равно при negate)
type Conditional struct {
	Field  string `json:"field"`
	Value  any    `json:"value"`
	Negate bool   `json:"negate,omitempty"`
}

// Version версия схемы формы. Активна не более одной версии.
type Version struct {
	ID        string     `json:"id,omitempty"`
	Version   int        `json:"version"`
	Elements  []FieldDef `json:"elements"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt,omitzero"`
}
