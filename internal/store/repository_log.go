package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/models"
)

// logRepository persists immutable log entries as JSONB documents. The
// repository exposes no update or delete: the exposed contract is strictly
// append-only.
type logRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLogRepository(db *DB, logger *logger.Logger) LogRepository {
	logger.Debug().Msg("creating log repository")
	return &logRepository{
		db:     db,
		logger: logger,
	}
}

// AppendLog stores one entry. The document ID and the server timestamp are
// assigned here; a client-supplied ID or timestamp is overwritten.
func (r *logRepository) AppendLog(ctx context.Context, userID string, entry models.LogEntry) (models.LogEntry, error) {
	log := logger.FromContext(ctx)

	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now().UTC()

	doc, err := json.Marshal(entry)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("encode log document: %w", err)
	}

	result, err := r.db.ExecContext(ctx, appendLog, entry.ID, userID, doc, entry.Timestamp)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.LogEntry{}, ErrNoUserWasFound
		case pgerrcode.UniqueViolation:
			return models.LogEntry{}, ErrLogNotSaved
		}
		log.Err(err).Str("func", "*logRepository.AppendLog").Msg("insert failed")
		return models.LogEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.LogEntry{}, ErrLogNotSaved
	}

	return entry, nil
}

// GetLogs returns the user's entries, optionally restricted to one entry
// type. The query is composed with squirrel so the optional filter does not
// require a second prepared statement.
func (r *logRepository) GetLogs(ctx context.Context, userID string, logType string) ([]models.LogEntry, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("doc").
		From("log_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		PlaceholderFormat(sq.Dollar)

	if logType != "" {
		builder = builder.Where(sq.Eq{"doc->>'type'": logType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*logRepository.GetLogs").Msg("query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LogEntry, 0)
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var entry models.LogEntry
		if err = json.Unmarshal(doc, &entry); err != nil {
			return nil, fmt.Errorf("decode log document: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
