package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrStorage wraps every failure of the underlying storage surface and
	// every stored document that cannot be decoded.
	ErrStorage = errors.New("storage failure")

	// ErrInvalidTheme is returned when saving or loading a theme other than
	// "light" or "dark".
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrUnknownBackend is returned by [NewStorages] for a backend name it
	// does not recognise.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors used by the SQLite backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an upsert fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
