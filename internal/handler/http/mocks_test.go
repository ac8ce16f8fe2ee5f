package http

import (
	"context"
	"errors"

	"github.com/safebite/safebite/internal/service"
	"github.com/safebite/safebite/models"
)

// ─────────────────────────────────────────────
// Function-field mocks for the service layer
// ─────────────────────────────────────────────

var errBoom = errors.New("boom")

type mockAuthService struct {
	bootstrapFn func(ctx context.Context) (models.User, models.Token, error)
	resumeFn    func(ctx context.Context, user models.User) (models.Token, error)
	createFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) BootstrapAnonymous(ctx context.Context) (models.User, models.Token, error) {
	if m.bootstrapFn != nil {
		return m.bootstrapFn(ctx)
	}
	return models.User{}, models.Token{}, nil
}

func (m *mockAuthService) Resume(ctx context.Context, user models.User) (models.Token, error) {
	if m.resumeFn != nil {
		return m.resumeFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseFn != nil {
		return m.parseFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockCatalogService struct {
	allergensFn func(ctx context.Context, callerID string) ([]models.Allergen, error)
	allergenFn  func(ctx context.Context, callerID, allergenID string) (models.Allergen, error)
	resourcesFn func(ctx context.Context, callerID string) ([]models.EducationalResource, error)
}

func (m *mockCatalogService) GetAllergens(ctx context.Context, callerID string) ([]models.Allergen, error) {
	if m.allergensFn != nil {
		return m.allergensFn(ctx, callerID)
	}
	return nil, nil
}

func (m *mockCatalogService) GetAllergen(ctx context.Context, callerID, allergenID string) (models.Allergen, error) {
	if m.allergenFn != nil {
		return m.allergenFn(ctx, callerID, allergenID)
	}
	return models.Allergen{}, nil
}

func (m *mockCatalogService) GetResources(ctx context.Context, callerID string) ([]models.EducationalResource, error) {
	if m.resourcesFn != nil {
		return m.resourcesFn(ctx, callerID)
	}
	return nil, nil
}

type mockProfileService struct {
	getFn  func(ctx context.Context, callerID, userID string) (models.UserProfile, error)
	saveFn func(ctx context.Context, callerID, userID string, profile models.UserProfile) (models.UserProfile, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, callerID, userID string) (models.UserProfile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, callerID, userID)
	}
	return models.UserProfile{}, nil
}

func (m *mockProfileService) SaveProfile(ctx context.Context, callerID, userID string, profile models.UserProfile) (models.UserProfile, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, callerID, userID, profile)
	}
	return profile, nil
}

type mockLogService struct {
	appendFn func(ctx context.Context, callerID, userID string, req models.LogAppendRequest) (models.LogEntry, error)
	getFn    func(ctx context.Context, callerID, userID string) ([]models.LogEntry, error)
}

func (m *mockLogService) AppendLog(ctx context.Context, callerID, userID string, req models.LogAppendRequest) (models.LogEntry, error) {
	if m.appendFn != nil {
		return m.appendFn(ctx, callerID, userID, req)
	}
	return models.LogEntry{}, nil
}

func (m *mockLogService) GetLogs(ctx context.Context, callerID, userID string) ([]models.LogEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, callerID, userID)
	}
	return nil, nil
}

type mockInsightService struct {
	analyzeFn    func(ctx context.Context, callerID string, req models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error)
	predictiveFn func(ctx context.Context, callerID string) (models.PredictiveInsights, error)
	predictFn    func(ctx context.Context, callerID string) (models.AllergenPrediction, error)
}

func (m *mockInsightService) AnalyzeText(ctx context.Context, callerID string, req models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, callerID, req)
	}
	return models.AnalyzeTextResponse{}, nil
}

func (m *mockInsightService) PredictiveAnalytics(ctx context.Context, callerID string) (models.PredictiveInsights, error) {
	if m.predictiveFn != nil {
		return m.predictiveFn(ctx, callerID)
	}
	return models.PredictiveInsights{}, nil
}

func (m *mockInsightService) PredictAllergen(ctx context.Context, callerID string) (models.AllergenPrediction, error) {
	if m.predictFn != nil {
		return m.predictFn(ctx, callerID)
	}
	return models.AllergenPrediction{}, nil
}

type mockAlertService struct {
	alertsFn func(ctx context.Context, callerID string) ([]models.Alert, error)
}

func (m *mockAlertService) GetAlerts(ctx context.Context, callerID string) ([]models.Alert, error) {
	if m.alertsFn != nil {
		return m.alertsFn(ctx, callerID)
	}
	return nil, nil
}
