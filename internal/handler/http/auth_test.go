package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/safebite/safebite/internal/service"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /api/auth/anonymous
// ─────────────────────────────────────────────

func TestBootstrapAnonymous(t *testing.T) {
	auth := &mockAuthService{
		bootstrapFn: func(_ context.Context) (models.User, models.Token, error) {
			return models.User{UserID: "user-1", DeviceSecret: "secret-1"},
				models.Token{SignedString: "jwt-1"}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/anonymous", nil)
	rec := httptest.NewRecorder()
	h.bootstrapAnonymous(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer jwt-1", rec.Header().Get("Authorization"))

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "user-1", user.UserID)
	assert.Equal(t, "secret-1", user.DeviceSecret)
}

func TestBootstrapAnonymous_ServiceError(t *testing.T) {
	auth := &mockAuthService{
		bootstrapFn: func(_ context.Context) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, errBoom
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/anonymous", nil)
	rec := httptest.NewRecorder()
	h.bootstrapAnonymous(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/auth/resume
// ─────────────────────────────────────────────

func TestResume(t *testing.T) {
	auth := &mockAuthService{
		resumeFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, "user-1", user.UserID)
			assert.Equal(t, "secret-1", user.DeviceSecret)
			return models.Token{SignedString: "jwt-2"}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	body := `{"userId":"user-1","deviceSecret":"secret-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/resume", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.resume(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer jwt-2", rec.Header().Get("Authorization"))
}

func TestResume_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/resume", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.resume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResume_RejectedCredentials(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unknown user", err: store.ErrNoUserWasFound},
		{name: "wrong device secret", err: service.ErrWrongDeviceSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				resumeFn: func(_ context.Context, _ models.User) (models.Token, error) {
					return models.Token{}, tt.err
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			body := `{"userId":"user-1","deviceSecret":"secret-1"}`
			req := httptest.NewRequest(http.MethodPost, "/api/auth/resume", strings.NewReader(body))
			rec := httptest.NewRecorder()
			h.resume(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid identity/device secret")
		})
	}
}

func TestResume_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		resumeFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/resume", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.resume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
