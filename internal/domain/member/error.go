package member

import "errors"

var (
	ErrNotFound      = errors.New("member not found")
	ErrInvalidData   = errors.New("invalid member data")
	ErrInvalidID     = errors.New("invalid member id")
	ErrMissingID     = errors.New("member id is required")
	ErrAlreadyExists = errors.New("member already exists")
)
