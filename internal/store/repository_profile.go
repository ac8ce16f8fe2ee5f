package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/models"
)

// profileRepository persists the per-user profile document as JSONB.
//
// SaveProfile implements the merge-write contract inside the database: the
// supplied fields are JSONB-concatenated over the stored document in a
// single statement, so concurrent saves to the same profile are serialized
// by the row lock and unspecified fields always keep their previous values.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile returns the stored profile document of the user, or
// [ErrProfileNotFound] if the user has never saved one.
func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	var doc []byte
	row := r.db.QueryRowContext(ctx, getProfile, userID)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProfile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("query failed")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode profile document: %w", err)
	}

	return profile, nil
}

// SaveProfile merges the supplied fields over the stored document and
// returns the merged result. A first save against a missing document is an
// insert of exactly the supplied fields.
func (r *profileRepository) SaveProfile(ctx context.Context, userID string, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(profile)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("encode profile document: %w", err)
	}

	var doc []byte
	row := r.db.QueryRowContext(ctx, saveProfile, userID, payload)
	if err = row.Scan(&doc); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.UserProfile{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*profileRepository.SaveProfile").Msg("merge write failed")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var merged models.UserProfile
	if err = json.Unmarshal(doc, &merged); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode merged profile document: %w", err)
	}

	return merged, nil
}
