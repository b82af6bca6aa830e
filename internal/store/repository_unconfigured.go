package store

import (
	"context"

	"github.com/MKhiriev/renglo-api/models"
)

// unconfiguredStateRepository is used when no storage backend is configured.
// The API still starts; state routes answer with [ErrStorageNotConfigured].
type unconfiguredStateRepository struct{}

// NewUnconfiguredStateRepository returns a [StateRepository] that fails every
// lookup with [ErrStorageNotConfigured].
func NewUnconfiguredStateRepository() StateRepository {
	return unconfiguredStateRepository{}
}

func (unconfiguredStateRepository) GetState(context.Context, string, string) (models.State, error) {
	return models.State{}, ErrStorageNotConfigured
}
