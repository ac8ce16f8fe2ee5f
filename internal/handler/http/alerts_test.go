package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safebite/safebite/internal/service"
	"github.com/safebite/safebite/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAlerts(t *testing.T) {
	alerts := &mockAlertService{
		alertsFn: func(_ context.Context, callerID string) ([]models.Alert, error) {
			assert.Equal(t, "user-1", callerID)
			return []models.Alert{{ID: "alert2", Type: "Contamination", Title: "Warning: Restaurant Y Update"}}, nil
		},
	}
	h := newTestHandler(&service.Services{AlertService: alerts})

	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/alerts", nil), "user-1")
	rec := httptest.NewRecorder()
	h.getAlerts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []models.Alert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "alert2", got[0].ID)
}

func TestGetAlerts_ServiceError(t *testing.T) {
	alerts := &mockAlertService{
		alertsFn: func(_ context.Context, _ string) ([]models.Alert, error) {
			return nil, errBoom
		},
	}
	h := newTestHandler(&service.Services{AlertService: alerts})

	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/alerts", nil), "user-1")
	rec := httptest.NewRecorder()
	h.getAlerts(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
