package form

import (
	"errors"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

var (
	ErrMissingName          = errors.New("field name is empty")
	ErrNilField             = errors.New("field is nil")
	ErrMissingAccessor      = errors.New("field does not expose a value accessor for its kind")
	ErrUncomparableField    = errors.New("field type is not comparable")
	ErrInvalidRule          = errors.New("invalid rule string")
	ErrUnknownRule          = validator.ErrUnknownRule
	ErrMissingSubmitHandler = errors.New("valid submit handler is required")

	ErrAmbiguousField = errors.New("more than one field registered under this name")
	ErrFieldNotFound  = errors.New("field not found")
)

var configurationErrors = []error{
	ErrMissingName,
	ErrNilField,
	ErrMissingAccessor,
	ErrUncomparableField,
	ErrInvalidRule,
	ErrUnknownRule,
	ErrMissingSubmitHandler,
	validator.ErrInvalidParams,
}

// IsConfigurationError reports whether err comes from misconfigured fields or
// form options rather than from user input.
func IsConfigurationError(err error) bool {
	for _, target := range configurationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
