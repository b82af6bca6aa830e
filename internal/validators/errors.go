package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidStateName    = errors.New("invalid state name")
	ErrInvalidStateVersion = errors.New("invalid state version")
)
