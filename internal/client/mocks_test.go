package client

import (
	"context"
	"errors"
	"sync"

	"github.com/safebite/safebite/internal/adapter"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/models"
)

var errBoom = errors.New("boom")

// ─────────────────────────────────────────────
// Function-field mock for the server adapter
// ─────────────────────────────────────────────

type mockServerAdapter struct {
	bootstrapFn    func(ctx context.Context) (models.User, error)
	resumeFn       func(ctx context.Context, user models.User) (models.Token, error)
	subscribeFn    func(ctx context.Context, topic string) (*adapter.Subscription, error)
	saveProfFn     func(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
	appendLogFn    func(ctx context.Context, req models.LogAppendRequest) (string, error)
	getProfileFn   func(ctx context.Context) (models.UserProfile, error)
	getLogsFn      func(ctx context.Context) ([]models.LogEntry, error)
	getAllergensFn func(ctx context.Context) ([]models.Allergen, error)
	getAllergenFn  func(ctx context.Context, allergenID string) (models.Allergen, error)
	getResourcesFn func(ctx context.Context) ([]models.EducationalResource, error)

	mu    sync.Mutex
	token string
}

func (m *mockServerAdapter) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *mockServerAdapter) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *mockServerAdapter) Bootstrap(ctx context.Context) (models.User, error) {
	if m.bootstrapFn != nil {
		return m.bootstrapFn(ctx)
	}
	return models.User{}, errBoom
}

func (m *mockServerAdapter) Resume(ctx context.Context, user models.User) (models.Token, error) {
	if m.resumeFn != nil {
		return m.resumeFn(ctx, user)
	}
	return models.Token{}, errBoom
}

func (m *mockServerAdapter) GetAllergens(ctx context.Context) ([]models.Allergen, error) {
	if m.getAllergensFn != nil {
		return m.getAllergensFn(ctx)
	}
	return nil, nil
}

func (m *mockServerAdapter) GetAllergen(ctx context.Context, allergenID string) (models.Allergen, error) {
	if m.getAllergenFn != nil {
		return m.getAllergenFn(ctx, allergenID)
	}
	return models.Allergen{}, nil
}

func (m *mockServerAdapter) GetResources(ctx context.Context) ([]models.EducationalResource, error) {
	if m.getResourcesFn != nil {
		return m.getResourcesFn(ctx)
	}
	return nil, nil
}

func (m *mockServerAdapter) GetProfile(ctx context.Context) (models.UserProfile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx)
	}
	return models.UserProfile{}, nil
}

func (m *mockServerAdapter) SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	if m.saveProfFn != nil {
		return m.saveProfFn(ctx, profile)
	}
	return profile, nil
}

func (m *mockServerAdapter) GetLogs(ctx context.Context) ([]models.LogEntry, error) {
	if m.getLogsFn != nil {
		return m.getLogsFn(ctx)
	}
	return nil, nil
}

func (m *mockServerAdapter) AppendLog(ctx context.Context, req models.LogAppendRequest) (string, error) {
	if m.appendLogFn != nil {
		return m.appendLogFn(ctx, req)
	}
	return "log-1", nil
}

func (m *mockServerAdapter) AnalyzeText(_ context.Context, _ models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error) {
	return models.AnalyzeTextResponse{}, nil
}

func (m *mockServerAdapter) PredictiveAnalytics(_ context.Context) (models.PredictiveInsights, error) {
	return models.PredictiveInsights{}, nil
}

func (m *mockServerAdapter) PredictAllergen(_ context.Context) (models.AllergenPrediction, error) {
	return models.AllergenPrediction{}, nil
}

func (m *mockServerAdapter) GetAlerts(_ context.Context) ([]models.Alert, error) {
	return nil, nil
}

func (m *mockServerAdapter) Subscribe(ctx context.Context, topic string) (*adapter.Subscription, error) {
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, topic)
	}
	return nil, errBoom
}

// ─────────────────────────────────────────────
// In-memory client storages
// ─────────────────────────────────────────────

type memoryCache struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{docs: make(map[string][]byte)}
}

func (c *memoryCache) Put(_ context.Context, path string, doc []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[path] = append([]byte(nil), doc...)
	return nil
}

func (c *memoryCache) Get(_ context.Context, path string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.docs[path]
	if !ok {
		return nil, store.ErrDocumentNotCached
	}
	return doc, nil
}

func (c *memoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = make(map[string][]byte)
	return nil
}

func (c *memoryCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

type memorySessionStore struct {
	mu      sync.Mutex
	session store.ClientSession
	stored  bool
}

func (s *memorySessionStore) LoadSession() (store.ClientSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stored {
		return store.ClientSession{}, store.ErrLocalSessionNotFound
	}
	return s.session, nil
}

func (s *memorySessionStore) SaveSession(session store.ClientSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.stored = true
	return nil
}

func (s *memorySessionStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = store.ClientSession{}
	s.stored = false
	return nil
}
