package service

import "errors"

// Sentinel errors returned by the service layer. Handlers use [errors.Is]
// to translate them into HTTP responses with user-facing messages.
var (
	// ErrInvalidDataProvided is returned when a request payload fails
	// validation before any storage or gateway call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongDeviceSecret is returned when a session resume presents a
	// device secret that does not match the stored hash.
	ErrWrongDeviceSecret = errors.New("wrong device secret")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure so
	// callers do not need to inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
