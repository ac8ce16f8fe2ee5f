package store

import (
	"context"
	"fmt"

	"github.com/safebite/safebite/internal/config"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/migrations"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	CatalogRepository CatalogRepository
	ProfileRepository ProfileRepository
	LogRepository     LogRepository
}

// NewStorages connects to the document store, runs pending schema migrations
// and wires every repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		CatalogRepository: NewCatalogRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		LogRepository:     NewLogRepository(db, log),
	}, nil
}
