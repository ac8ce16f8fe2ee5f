package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/safebite/safebite/internal/config"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/policy"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/internal/utils"
	"github.com/safebite/safebite/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles anonymous account bootstrap, session resume, and the JWT token
// lifecycle, using a UserRepository for persistence and bcrypt for the
// device secret.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// BootstrapAnonymous creates a fresh anonymous account.
//
// The server assigns the identity (a UUID) and a device secret, stores the
// bcrypt hash of the secret, and creates the "users/{uid}" document through
// the same policy gate every other write passes. The clear-text secret is
// returned exactly once; losing it means losing the account.
func (a *authService) BootstrapAnonymous(ctx context.Context) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	userID := uuid.NewString()
	deviceSecret := uuid.NewString()

	hash, err := bcrypt.GenerateFromPassword([]byte(deviceSecret), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("hash device secret: %w", err)
	}

	// The bootstrapping caller becomes the identity it creates; the create
	// rule on "users/{uid}" is evaluated exactly like any other operation.
	if err = policy.Authorize(policy.Identity(userID), "users/"+userID, policy.OpCreate); err != nil {
		return models.User{}, models.Token{}, err
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:           userID,
		DeviceSecretHash: string(hash),
	})
	if err != nil {
		log.Err(err).Msg("anonymous account creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("anonymous account creation ended with error: %w", err)
	}
	created.DeviceSecret = deviceSecret

	token, err := a.CreateToken(ctx, created)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("userID", created.UserID).Msg("anonymous account bootstrapped")
	return created, token, nil
}

// Resume authenticates an existing anonymous account.
//
// Returns the refreshed bearer token or:
//   - ErrInvalidDataProvided if UserID or DeviceSecret is empty.
//   - A wrapped storage error if the lookup fails (e.g. account not found —
//     see store.ErrNoUserWasFound).
//   - ErrWrongDeviceSecret if the presented secret does not match.
func (a *authService) Resume(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	if user.UserID == "" || user.DeviceSecret == "" {
		log.Error().Str("userID", user.UserID).Msg("invalid resume data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.FindUser(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("userID", user.UserID).Msg("user search failed")
		return models.Token{}, fmt.Errorf("user search failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.DeviceSecretHash), []byte(user.DeviceSecret)); err != nil {
		log.Error().Str("userID", user.UserID).Msg("wrong device secret")
		return models.Token{}, ErrWrongDeviceSecret
	}

	return a.CreateToken(ctx, found)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
