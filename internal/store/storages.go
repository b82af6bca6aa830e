package store

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/renglo-api/internal/config"
	"github.com/MKhiriev/renglo-api/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	StateRepository StateRepository

	db *DB
}

// NewStorages selects the state backend from cfg:
//   - STORAGE_DB_DATABASE_URI set: SQL (PostgreSQL for postgres:// DSNs,
//     SQLite otherwise), migrated on startup
//   - S3_BUCKET_NAME set: S3 with the default AWS credential chain
//   - neither: an unconfigured repository
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	if dsn := cfg.Storage.DB.DSN; dsn != "" {
		db, err := openDB(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}

		return &Storages{
			StateRepository: NewStateRepository(db, log),
			db:              db,
		}, nil
	}

	if bucket := cfg.Settings.S3BucketName; bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error loading aws config")
			return nil, fmt.Errorf("error loading aws config: %w", err)
		}

		return &Storages{
			StateRepository: NewS3StateStorage(s3.NewFromConfig(awsCfg), bucket, log),
		}, nil
	}

	log.Warn().Str("func", "NewStorages").Msg("no state storage configured, state routes will answer 503")
	return &Storages{
		StateRepository: NewUnconfiguredStateRepository(),
	}, nil
}

func openDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
