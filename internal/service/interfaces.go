package service

import (
	"context"

	"github.com/MKhiriev/renglo-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// StateService resolves named state values for the state routes.
type StateService interface {
	// GetState returns the state name at version. An empty version means
	// [models.LastVersion].
	GetState(ctx context.Context, name, version string) (models.State, error)
}

// AuthService verifies Cognito bearer tokens.
type AuthService interface {
	// ParseToken verifies tokenString and returns the caller it identifies.
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}
