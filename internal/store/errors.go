package store

import "errors"

// Sentinel errors returned by key-value backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when the key has never been set or
	// has been deleted.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStoreUnavailable is returned when the backend cannot be reached or
	// written (connection loss, locked database, unwritable file). The
	// operation may succeed if retried.
	ErrStoreUnavailable = errors.New("key-value store unavailable")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails for a
	// reason that retrying will not fix.
	ErrExecutingQuery = errors.New("error executing sql query")
)
