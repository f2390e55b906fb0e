package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// record does not exist in the data store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, unknown enum value in a patch).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrForbidden is returned when the active demo role lacks the permission
// required for an operation. Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")
