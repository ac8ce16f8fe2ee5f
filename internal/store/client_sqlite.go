package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 database/sql driver
	"github.com/safebite/safebite/internal/logger"
)

// ErrDocumentNotCached is returned by [DocumentCache.Get] when the requested
// path has never been delivered by a subscription.
var ErrDocumentNotCached = errors.New("document not cached")

const createDocumentsTable = `CREATE TABLE IF NOT EXISTS documents (
    path       TEXT PRIMARY KEY,
    doc        BLOB NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// sqliteDocumentCache is the SQLite-backed implementation of
// [DocumentCache].
type sqliteDocumentCache struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewDocumentCache opens (and if needed creates) the SQLite cache at path.
// ":memory:" keeps the cache ephemeral, which the tests rely on.
func NewDocumentCache(path string, log *logger.Logger) (DocumentCache, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache: %w", err)
	}

	if _, err = db.Exec(createDocumentsTable); err != nil {
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	log.Debug().Str("path", path).Msg("document cache opened")
	return &sqliteDocumentCache{db: db, logger: log}, nil
}

func (c *sqliteDocumentCache) Put(ctx context.Context, path string, doc []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO documents (path, doc, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
         ON CONFLICT (path) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP;`,
		path, doc)
	if err != nil {
		return fmt.Errorf("cache put %s: %w", path, err)
	}
	return nil
}

func (c *sqliteDocumentCache) Get(ctx context.Context, path string) ([]byte, error) {
	var doc []byte
	row := c.db.QueryRowContext(ctx, `SELECT doc FROM documents WHERE path = ?;`, path)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotCached
		}
		return nil, fmt.Errorf("cache get %s: %w", path, err)
	}
	return doc, nil
}

func (c *sqliteDocumentCache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM documents;`); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}
