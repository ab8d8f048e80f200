package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, name longer than the column).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write violates a uniqueness rule: a slug
// taken by a concurrent create, a duplicate course number, or a second
// semester for the same year and calendar period.
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")
