package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifySQLError maps a driver error to a storage sentinel.
// It returns nil when the error has no special meaning for callers.
//
// Mapped to [ErrStorageUnavailable]:
//   - Class 08: connection exceptions
//   - Class 57: operator intervention (admin shutdown, cannot connect now)
//   - Class 53: insufficient resources (too many connections)
//   - 42P01 undefined_table, i.e. migrations were never applied
//   - driver.ErrBadConn
func classifySQLError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, driver.ErrBadConn) {
		return ErrStorageUnavailable
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code),
		pgerrcode.IsInsufficientResources(pgErr.Code),
		pgErr.Code == pgerrcode.UndefinedTable:
		return ErrStorageUnavailable
	default:
		return nil
	}
}
