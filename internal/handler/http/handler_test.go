package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safebite/safebite/internal/hub"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/service"
	"github.com/safebite/safebite/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, hub.New(logger.Nop()), logger.Nop())
}

// withUserID injects an authenticated identity into the request context the
// same way the auth middleware does.
func withUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := newTestHandler(&service.Services{})

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := newTestHandler(svc)

	assert.Equal(t, svc, h.services)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_HomeRoute(t *testing.T) {
	h := newTestHandler(&service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SafeBite Backend API is running!", rec.Body.String())
}

func TestInit_AuthedRoutesRejectAnonymous(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/allergens"},
		{http.MethodGet, "/api/allergens/lupin"},
		{http.MethodGet, "/api/educational-resources"},
		{http.MethodGet, "/api/user/profile"},
		{http.MethodPost, "/api/user/profile"},
		{http.MethodPut, "/api/user/profile"},
		{http.MethodGet, "/api/user/logs"},
		{http.MethodPost, "/api/user/logs"},
		{http.MethodPost, "/api/analyze-text"},
		{http.MethodGet, "/api/predictive-analytics"},
		{http.MethodGet, "/api/predict-allergen"},
		{http.MethodGet, "/api/alerts"},
		{http.MethodGet, "/api/subscribe"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Authorization token required")
		})
	}
}

func TestInit_PublicAuthRoutesRegistered(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/anonymous", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// reaches the handler, not a 404/401
	assert.Equal(t, http.StatusCreated, rec.Code)
}
