package store

import (
	"fmt"

	"github.com/safebite/safebite/internal/config"
	"github.com/safebite/safebite/internal/logger"
)

// ClientStorages groups the client-side storage layers into a single value
// that can be passed around the client services.
type ClientStorages struct {
	// DocumentCache mirrors subscribed server documents locally.
	DocumentCache DocumentCache

	// SessionStore persists the identity and device secret between runs.
	SessionStore SessionStore
}

// NewClientStorages initialises the client storage layer: it opens the
// SQLite document cache (creating the file on first run) and wires the
// session file store.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	cache, err := NewDocumentCache(cfg.CachePath, log)
	if err != nil {
		return nil, fmt.Errorf("open document cache: %w", err)
	}

	return &ClientStorages{
		DocumentCache: cache,
		SessionStore:  NewSessionStore(cfg.SessionPath),
	}, nil
}
