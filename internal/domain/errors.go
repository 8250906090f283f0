package domain

import "errors"

// ErrValidation is returned by service functions when input fails the
// booking form rules (blank name, missing arrival or departure date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
