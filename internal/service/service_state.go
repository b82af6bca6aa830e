package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/internal/store"
	"github.com/MKhiriev/renglo-api/models"
)

type stateService struct {
	repository store.StateRepository
	logger     *logger.Logger
}

// NewStateService returns a [StateService] reading from repository.
func NewStateService(repository store.StateRepository, logger *logger.Logger) StateService {
	return &stateService{
		repository: repository,
		logger:     logger,
	}
}

// GetState defaults an empty version to [models.LastVersion] and delegates
// to the repository. Repository errors are wrapped so that callers can match
// the store sentinels with errors.Is.
func (s *stateService) GetState(ctx context.Context, name, version string) (models.State, error) {
	log := logger.FromContext(ctx)

	if version == "" {
		version = models.LastVersion
	}

	state, err := s.repository.GetState(ctx, name, version)
	if err != nil {
		log.Err(err).Str("name", name).Str("version", version).Msg("state lookup failed")
		return models.State{}, fmt.Errorf("state lookup failed: %w", err)
	}

	return state, nil
}
