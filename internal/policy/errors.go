package policy

import "errors"

// Sentinel errors returned by Authorize. Callers should use [errors.Is] to
// match against these values and translate them into transport-level
// responses at the operation boundary.
var (
	// ErrAuthenticationRequired is returned when no identity is present at
	// operation time.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrPermissionDenied is returned when an authenticated caller attempts
	// an operation that no rule grants.
	ErrPermissionDenied = errors.New("permission denied")
)
