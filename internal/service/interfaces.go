package service

import (
	"context"

	"github.com/safebite/safebite/models"
)

// AuthService manages the anonymous identity lifecycle and the JWT bearer
// credential derived from it.
type AuthService interface {
	// BootstrapAnonymous creates a fresh anonymous account guarded by a
	// generated device secret and returns the account together with its
	// first bearer token. The device secret is returned exactly once.
	BootstrapAnonymous(ctx context.Context) (models.User, models.Token, error)

	// Resume exchanges an existing identity plus its device secret for a
	// fresh bearer token.
	Resume(ctx context.Context, user models.User) (models.Token, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatalogService reads the global catalogs on behalf of an authenticated
// caller. Every method consults the access policy before touching storage.
type CatalogService interface {
	GetAllergens(ctx context.Context, callerID string) ([]models.Allergen, error)
	GetAllergen(ctx context.Context, callerID, allergenID string) (models.Allergen, error)
	GetResources(ctx context.Context, callerID string) ([]models.EducationalResource, error)
}

// ProfileService reads and merge-writes the caller's profile document.
type ProfileService interface {
	GetProfile(ctx context.Context, callerID, userID string) (models.UserProfile, error)
	SaveProfile(ctx context.Context, callerID, userID string, profile models.UserProfile) (models.UserProfile, error)
}

// LogService appends and reads the caller's immutable log entries.
type LogService interface {
	AppendLog(ctx context.Context, callerID, userID string, req models.LogAppendRequest) (models.LogEntry, error)

	// GetLogs returns the caller's entries ordered chronologically by the
	// occurrence time reconstructed from each entry's date/time fields.
	GetLogs(ctx context.Context, callerID, userID string) ([]models.LogEntry, error)
}

// InsightService implements the AI analysis operations. All three read only
// the caller's own stored documents and never mutate anything.
type InsightService interface {
	AnalyzeText(ctx context.Context, callerID string, req models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error)
	PredictiveAnalytics(ctx context.Context, callerID string) (models.PredictiveInsights, error)
	PredictAllergen(ctx context.Context, callerID string) (models.AllergenPrediction, error)
}

// AlertService serves recall/contamination alerts relevant to the caller.
type AlertService interface {
	GetAlerts(ctx context.Context, callerID string) ([]models.Alert, error)
}
