package store

import (
	"context"

	"github.com/safebite/safebite/models"
)

// UserRepository persists user accounts. CreateUser is idempotent with
// respect to the user ID: re-creating an existing account is a merge, not an
// error.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUser(ctx context.Context, userID string) (models.User, error)
}

// CatalogRepository reads the global allergen and educational-resource
// catalogs. Both catalogs are maintained administratively; no write methods
// exist on purpose.
type CatalogRepository interface {
	GetAllergens(ctx context.Context) ([]models.Allergen, error)
	GetAllergen(ctx context.Context, id string) (models.Allergen, error)
	GetResources(ctx context.Context) ([]models.EducationalResource, error)
}

// ProfileRepository persists the per-user profile document.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.UserProfile, error)

	// SaveProfile writes the supplied fields with merge semantics: fields
	// absent from profile keep their previously stored values. Returns the
	// merged document as stored.
	SaveProfile(ctx context.Context, userID string, profile models.UserProfile) (models.UserProfile, error)
}

// LogRepository persists immutable log entries. Entries are append-only:
// no update or delete methods exist.
type LogRepository interface {
	// AppendLog stores one entry, assigning the document ID and the server
	// timestamp, and returns the stored entry.
	AppendLog(ctx context.Context, userID string, entry models.LogEntry) (models.LogEntry, error)

	// GetLogs returns every entry of the user, optionally filtered by entry
	// type (empty logType means all types). Ordering of the result is
	// unspecified; callers sort by the reconstructed occurrence time.
	GetLogs(ctx context.Context, userID string, logType string) ([]models.LogEntry, error)
}
