package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a lookup targets a user ID that
	// does not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when a user has not saved a profile
	// document yet. Callers treat this as an empty/default profile rather
	// than a hard failure.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrAllergenNotFound is returned when a catalog lookup references an
	// allergen ID that is not in the catalog.
	ErrAllergenNotFound = errors.New("allergen not found")

	// ErrLogNotSaved is returned when an INSERT of a log entry completes
	// without error but the number of affected rows is zero.
	ErrLogNotSaved = errors.New("log entry was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
