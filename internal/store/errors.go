package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when no access token is cached.
	ErrCredentialNotFound = errors.New("no cached credential was found")

	// ErrTrainSetNotFound is returned when no train set UID is cached for a
	// fingerprint.
	ErrTrainSetNotFound = errors.New("train set was not found in cache")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
