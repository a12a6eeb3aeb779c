package admin

import "errors"

var (
	ErrNotFound           = errors.New("admin not found")
	ErrAlreadyExists      = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)
