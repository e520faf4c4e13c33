package validator

import "errors"

var (
	// ErrUnknownRule is returned when a rule name is not present in a registry.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrInvalidParams is returned when rule parameters fail the entry's checks.
	ErrInvalidParams = errors.New("invalid rule parameters")
)
