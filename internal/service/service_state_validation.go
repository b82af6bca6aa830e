package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/renglo-api/internal/validators"
	"github.com/MKhiriev/renglo-api/models"
)

// StateServiceWrapper decorates a StateService, e.g. with input validation.
type StateServiceWrapper interface {
	Wrap(StateService) StateService
}

// StateValidationService rejects malformed names and versions before they
// reach the storage backend.
type StateValidationService struct {
	inner     StateService
	validator validators.Validator
}

func NewStateValidationService() StateServiceWrapper {
	return &StateValidationService{
		validator: validators.NewStateRequestValidator(),
	}
}

func (v *StateValidationService) Wrap(inner StateService) StateService {
	v.inner = inner
	return v
}

func (v *StateValidationService) GetState(ctx context.Context, name, version string) (models.State, error) {
	if version == "" {
		version = models.LastVersion
	}

	req := models.StateRequest{Name: name, Version: version}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.State{}, fmt.Errorf("%w: %w", ErrInvalidStateRequest, err)
	}

	return v.inner.GetState(ctx, name, version)
}
