package store

import (
	"context"

	"github.com/MKhiriev/renglo-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StateRepository reads named state values from a storage backend.
type StateRepository interface {
	// GetState returns the state stored under name and version. The version
	// [models.LastVersion] selects the most recently updated one.
	// Returns [ErrStateNotFound] when nothing matches.
	GetState(ctx context.Context, name, version string) (models.State, error)
}
