package service

import (
	"errors"
)

// Error taxonomy surfaced by the service layer. Controllers map these onto
// HTTP statuses: ErrValidation -> 400, ErrNotFound -> 404, everything else
// (including ErrPersistence) -> 500.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failed")
)
