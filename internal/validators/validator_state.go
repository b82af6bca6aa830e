package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/renglo-api/models"
)

// Field names accepted by [StateRequestValidator].
const (
	FieldName    = "name"
	FieldVersion = "version"
)

// stateIdentifier is the shape of both state names and versions: it may not
// start with a dot, so ".." and hidden names are rejected, and it may not
// contain "/" because it becomes a single S3 key segment.
var stateIdentifier = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.\-]{0,127}$`)

type StateRequestValidator struct{}

func NewStateRequestValidator() Validator {
	return &StateRequestValidator{}
}

// Validate accepts models.StateRequest or *models.StateRequest.
func (v *StateRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StateRequest:
		return v.validateStateRequest(ctx, value, fields...)
	case *models.StateRequest:
		if value == nil {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
		}
		return v.validateStateRequest(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *StateRequestValidator) validateStateRequest(_ context.Context, req models.StateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldVersion}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if !stateIdentifier.MatchString(req.Name) {
				return fmt.Errorf("%w: %q", ErrInvalidStateName, req.Name)
			}
		case FieldVersion:
			if req.Version != models.LastVersion && !stateIdentifier.MatchString(req.Version) {
				return fmt.Errorf("%w: %q", ErrInvalidStateVersion, req.Version)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
