package schema

import "errors"

var (
	ErrNotFound        = errors.New("schema not found")
	ErrInvalidElements = errors.New("elements array is required")
	ErrCacheMiss       = errors.New("schema cache miss")
)
