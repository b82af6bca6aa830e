package store

import "errors"

// Sentinel errors returned by state repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStateNotFound is returned when no state matches the requested name
	// and version.
	ErrStateNotFound = errors.New("state not found")

	// ErrStorageNotConfigured is returned by every call when neither a
	// database DSN nor an S3 bucket is configured.
	ErrStorageNotConfigured = errors.New("state storage is not configured")

	// ErrStorageUnavailable is returned when the backend cannot be reached,
	// e.g. a dropped database connection.
	ErrStorageUnavailable = errors.New("state storage is unavailable")

	// ErrInvalidPayload is returned when a stored payload is not valid JSON.
	ErrInvalidPayload = errors.New("stored state payload is not valid json")
)

// Low-level operation errors wrapped by repository methods.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrListingObjects is returned when listing state objects in S3 fails.
	ErrListingObjects = errors.New("failed to list state objects")

	// ErrReadingObject is returned when fetching or reading an S3 object fails.
	ErrReadingObject = errors.New("failed to read state object")
)
