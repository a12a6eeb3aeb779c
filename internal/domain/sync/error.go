package sync

import "errors"

var (
	ErrInvalidBatch = errors.New("records array is required")
)
