package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingFields is wrapped by every required-field error below.
	ErrMissingFields = errors.New("missing required fields")

	ErrEmptyID       = fmt.Errorf("%w: id", ErrMissingFields)
	ErrEmptyTitle    = fmt.Errorf("%w: title", ErrMissingFields)
	ErrEmptyUsername = fmt.Errorf("%w: username", ErrMissingFields)
	ErrEmptyPassword = fmt.Errorf("%w: password", ErrMissingFields)
	ErrEmptyKey      = fmt.Errorf("%w: key", ErrMissingFields)

	ErrInvalidURL = errors.New("invalid url")
)
