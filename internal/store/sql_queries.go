package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/renglo-api/models"
)

const statesTable = "states"

var stateColumns = []string{"name", "version", "payload", "updated_at"}

// selectStateQuery renders the lookup of a single state version. For
// [models.LastVersion] the newest row of name is selected.
func selectStateQuery(name, version string, placeholder sq.PlaceholderFormat) (string, []any, error) {
	query := sq.Select(stateColumns...).
		From(statesTable).
		Where(sq.Eq{"name": name})

	if version == models.LastVersion {
		query = query.OrderBy("updated_at DESC").Limit(1)
	} else {
		query = query.Where(sq.Eq{"version": version})
	}

	sqlText, args, err := query.PlaceholderFormat(placeholder).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlText, args, nil
}
