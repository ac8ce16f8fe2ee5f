package adapter

import "errors"

// Transport-agnostic error kinds surfaced to the client application. Each
// maps a class of server responses; mapHTTPError wraps the response body so
// the original message is preserved.
var (
	// ErrUnauthorized covers missing, invalid or expired credentials.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden covers requests the caller's identity may not perform.
	ErrForbidden = errors.New("permission denied")

	// ErrNotFound covers reads of documents that do not exist.
	ErrNotFound = errors.New("not found")

	// ErrRemoteService covers failures of the server's AI analysis backend.
	ErrRemoteService = errors.New("remote service error")

	// ErrNetwork covers transport-level failures before any server response
	// was received.
	ErrNetwork = errors.New("network error")
)
