package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrMissingRequiredInput = errors.New("missing required anthropometric input")
	ErrInvalidInput         = errors.New("invalid input")
)
