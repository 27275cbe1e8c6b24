package donation

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("donation not found")
	ErrInvalidStatus     = errors.New("invalid donation status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNGORequired       = errors.New("ngo required for this status")
)
