package service

import (
	"context"
	"errors"

	"github.com/safebite/safebite/models"
)

// ─────────────────────────────────────────────
// Function-field mocks for the store interfaces
// ─────────────────────────────────────────────

var errStorage = errors.New("storage error")

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUser(ctx context.Context, userID string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

type mockCatalogRepository struct {
	allergensFn func(ctx context.Context) ([]models.Allergen, error)
	allergenFn  func(ctx context.Context, id string) (models.Allergen, error)
	resourcesFn func(ctx context.Context) ([]models.EducationalResource, error)
}

func (m *mockCatalogRepository) GetAllergens(ctx context.Context) ([]models.Allergen, error) {
	if m.allergensFn != nil {
		return m.allergensFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) GetAllergen(ctx context.Context, id string) (models.Allergen, error) {
	if m.allergenFn != nil {
		return m.allergenFn(ctx, id)
	}
	return models.Allergen{}, nil
}

func (m *mockCatalogRepository) GetResources(ctx context.Context) ([]models.EducationalResource, error) {
	if m.resourcesFn != nil {
		return m.resourcesFn(ctx)
	}
	return nil, nil
}

type mockProfileRepository struct {
	getFn  func(ctx context.Context, userID string) (models.UserProfile, error)
	saveFn func(ctx context.Context, userID string, profile models.UserProfile) (models.UserProfile, error)
}

func (m *mockProfileRepository) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return models.UserProfile{}, nil
}

func (m *mockProfileRepository) SaveProfile(ctx context.Context, userID string, profile models.UserProfile) (models.UserProfile, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, userID, profile)
	}
	return profile, nil
}

type mockLogRepository struct {
	appendFn func(ctx context.Context, userID string, entry models.LogEntry) (models.LogEntry, error)
	getFn    func(ctx context.Context, userID string, logType string) ([]models.LogEntry, error)
}

func (m *mockLogRepository) AppendLog(ctx context.Context, userID string, entry models.LogEntry) (models.LogEntry, error) {
	if m.appendFn != nil {
		return m.appendFn(ctx, userID, entry)
	}
	return entry, nil
}

func (m *mockLogRepository) GetLogs(ctx context.Context, userID string, logType string) ([]models.LogEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, logType)
	}
	return nil, nil
}

// mockGenerator satisfies StructuredGenerator.
type mockGenerator struct {
	generateFn func(ctx context.Context, prompt string, schema any, out any) error
}

func (m *mockGenerator) GenerateStructured(ctx context.Context, prompt string, schema any, out any) error {
	if m.generateFn != nil {
		return m.generateFn(ctx, prompt, schema, out)
	}
	return nil
}
