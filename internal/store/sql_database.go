package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/migrations"
)

// DB wraps a *sql.DB together with the goose dialect it was opened with.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies the embedded migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// placeholder returns the squirrel bind-variable format of the dialect.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == migrations.DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// isPostgresDSN reports whether dsn addresses a PostgreSQL server. Every
// other DSN is treated as a SQLite file path.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
