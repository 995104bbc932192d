package domain

import "errors"

// Domain errors (no external dependencies). The REST backend owns every
// business rule; these sentinels classify what it answered.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
	ErrValidation   = errors.New("invalid input")
	ErrConflict     = errors.New("conflict with current state")
	ErrServer       = errors.New("backend error")
	ErrUnavailable  = errors.New("backend unreachable")
)
