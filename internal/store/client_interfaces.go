package store

import "context"

// DocumentCache is the client's local mirror of server documents, keyed by
// the document's hierarchical path. The cache is a read-model: it only ever
// stores what a live subscription delivered, so a restarted client resumes
// from the last converged state instead of an empty screen.
type DocumentCache interface {
	Put(ctx context.Context, path string, doc []byte) error
	Get(ctx context.Context, path string) ([]byte, error)

	// Clear wipes the whole cache. Called on sign-out so no identity-derived
	// state survives the session.
	Clear(ctx context.Context) error
}

// SessionStore persists the client's identity and device secret between
// runs.
type SessionStore interface {
	LoadSession() (ClientSession, error)
	SaveSession(session ClientSession) error
	ClearSession() error
}
