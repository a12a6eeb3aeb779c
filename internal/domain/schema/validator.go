package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeElements разбирает поле elements запроса. null, отсутствие поля и не-массив
// дают ErrInvalidElements.
func DecodeElements(raw json.RawMessage) ([]FieldDef, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrInvalidElements
	}

	var elements []FieldDef
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidElements, err)
	}
	return elements, nil
}

// ValidateElements проверяет набор полей перед сохранением
func ValidateElements(elements []FieldDef) error {
	if len(elements) == 0 {
		return ErrInvalidElements
	}

	names := make(map[string]struct{}, len(elements))
	for i, el := range elements {
		if strings.TrimSpace(el.Name) == "" {
			return fmt.Errorf("%w: element %d: name is required", ErrInvalidElements, i)
		}
		if strings.TrimSpace(el.Label) == "" {
			return fmt.Errorf("%w: element %q: label is required", ErrInvalidElements, el.Name)
		}
		if _, ok := fieldTypes[el.Type]; !ok {
			return fmt.Errorf("%w: element %q: unknown type %q", ErrInvalidElements, el.Name, el.Type)
		}
		if _, dup := names[el.Name]; dup {
			return fmt.Errorf("%w: duplicate element name %q", ErrInvalidElements, el.Name)
		}
		names[el.Name] = struct{}{}
	}

	for _, el := range elements {
		if el.Conditional == nil {
			continue
		}
		if el.Conditional.Field == el.Name {
			return fmt.Errorf("%w: element %q: conditional refers to itself", ErrInvalidElements, el.Name)
		}
		if _, ok := names[el.Conditional.Field]; !ok {
			return fmt.Errorf("%w: element %q: conditional field %q does not exist",
				ErrInvalidElements, el.Name, el.Conditional.Field)
		}
	}

	return nil
}
