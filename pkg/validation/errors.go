package validation

import "errors"

var (
	// ErrValidationFailed is matched by the error returned from Results.Err.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPattern is the panic value (wrapped) for a regular expression that does not compile.
	ErrInvalidPattern = errors.New("validation: invalid pattern")

	// ErrInvalidLayout is the panic value for an empty date layout.
	ErrInvalidLayout = errors.New("validation: invalid date layout")

	// ErrInvalidArgument is the panic value for nil callbacks and collaborators.
	ErrInvalidArgument = errors.New("validation: invalid argument")
)
