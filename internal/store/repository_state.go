package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/models"
)

// stateRepository is the SQL implementation of [StateRepository] backed by
// the "states" table.
type stateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStateRepository constructs a [StateRepository] over db.
func NewStateRepository(db *DB, log *logger.Logger) StateRepository {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql state repository")
	return &stateRepository{
		db:     db,
		logger: log,
	}
}

// GetState selects a single row of the "states" table.
//
// Error handling:
//   - no row → [ErrStateNotFound]
//   - connection-class driver errors → [ErrStorageUnavailable]
//   - payload that is not valid JSON → [ErrInvalidPayload]
func (r *stateRepository) GetState(ctx context.Context, name, version string) (models.State, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectStateQuery(name, version, r.db.placeholder())
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.GetState").Msg("error building query")
		return models.State{}, err
	}

	var (
		state   models.State
		payload string
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&state.Name, &state.Version, &payload, &state.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.State{}, fmt.Errorf("%w: %s@%s", ErrStateNotFound, name, version)
	case err != nil:
		log.Err(err).Str("func", "*stateRepository.GetState").Str("name", name).Msg("error selecting state")
		if sentinel := classifySQLError(err); sentinel != nil {
			return models.State{}, fmt.Errorf("%w: %w", sentinel, err)
		}
		return models.State{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !json.Valid([]byte(payload)) {
		log.Error().Str("func", "*stateRepository.GetState").Str("name", name).Str("version", state.Version).Msg("stored payload is not json")
		return models.State{}, fmt.Errorf("%w: %s@%s", ErrInvalidPayload, name, state.Version)
	}
	state.Payload = json.RawMessage(payload)

	return state, nil
}
