package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles anonymous account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new anonymous account and returns the record with
// server-assigned fields populated.
//
// Creation is idempotent: inserting an already existing user ID leaves the
// stored record untouched and returns it, so a repeated bootstrap of the
// same identity is a merge rather than an error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.DeviceSecretHash)
	if err := row.Scan(&created.UserID, &created.DeviceSecretHash, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUser retrieves the account with the given user ID.
//
// Returns [ErrNoUserWasFound] when no such account exists; any other
// driver-level error is wrapped and returned as-is.
func (r *userRepository) FindUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUser, userID)
	if err := row.Scan(&found.UserID, &found.DeviceSecretHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
