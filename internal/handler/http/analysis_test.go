package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/safebite/safebite/internal/gateway"
	"github.com/safebite/safebite/internal/service"
	"github.com/safebite/safebite/models"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeText(t *testing.T) {
	insights := &mockInsightService{
		analyzeFn: func(_ context.Context, callerID string, req models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error) {
			assert.Equal(t, "user-1", callerID)
			assert.Equal(t, "pad thai with peanuts", req.Text)
			return models.AnalyzeTextResponse{
				AnalysisResult: models.AnalysisResult{OverallRiskSummary: "High risk."},
			}, nil
		},
	}
	h := newTestHandler(&service.Services{InsightService: insights})

	body := `{"text":"pad thai with peanuts","userAllergens":["peanut"]}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/analyze-text", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	h.analyzeText(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "analysis_result")
	assert.Contains(t, rec.Body.String(), "High risk.")
}

func TestAnalyzeText_EmptyText(t *testing.T) {
	insights := &mockInsightService{
		analyzeFn: func(_ context.Context, _ string, _ models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error) {
			return models.AnalyzeTextResponse{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(&service.Services{InsightService: insights})

	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/analyze-text", strings.NewReader(`{"text":""}`)), "user-1")
	rec := httptest.NewRecorder()
	h.analyzeText(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No text provided for analysis")
}

func TestAnalyzeText_GatewayFailure(t *testing.T) {
	insights := &mockInsightService{
		analyzeFn: func(_ context.Context, _ string, _ models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error) {
			return models.AnalyzeTextResponse{}, gateway.ErrRemoteService
		},
	}
	h := newTestHandler(&service.Services{InsightService: insights})

	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/analyze-text", strings.NewReader(`{"text":"soup"}`)), "user-1")
	rec := httptest.NewRecorder()
	h.analyzeText(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to get analysis from AI. Please try again.")
}

func TestPredictiveAnalytics(t *testing.T) {
	insights := &mockInsightService{
		predictiveFn: func(_ context.Context, callerID string) (models.PredictiveInsights, error) {
			assert.Equal(t, "user-1", callerID)
			return models.PredictiveInsights{
				Patterns:       []string{"symptoms follow restaurant meals"},
				Suggestions:    []string{"ask about sesame"},
				GeminiInsights: "Analysis completed successfully.",
			}, nil
		},
	}
	h := newTestHandler(&service.Services{InsightService: insights})

	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/predictive-analytics", nil), "user-1")
	rec := httptest.NewRecorder()
	h.predictiveAnalytics(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "symptoms follow restaurant meals")
}

func TestPredictiveAnalytics_GatewayFailure(t *testing.T) {
	insights := &mockInsightService{
		predictiveFn: func(_ context.Context, _ string) (models.PredictiveInsights, error) {
			return models.PredictiveInsights{}, gateway.ErrRemoteService
		},
	}
	h := newTestHandler(&service.Services{InsightService: insights})

	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/predictive-analytics", nil), "user-1")
	rec := httptest.NewRecorder()
	h.predictiveAnalytics(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to generate insights from logs. Please try again later.")
}

func TestPredictAllergen(t *testing.T) {
	insights := &mockInsightService{
		predictFn: func(_ context.Context, _ string) (models.AllergenPrediction, error) {
			return models.AllergenPrediction{
				PredictedAllergens: []models.PredictedAllergen{{Allergen: "sesame", Reasoning: "tahini correlation"}},
				GeminiMessage:      "Analysis complete. Here are possible allergens based on your logs.",
			}, nil
		},
	}
	h := newTestHandler(&service.Services{InsightService: insights})

	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/predict-allergen", nil), "user-1")
	rec := httptest.NewRecorder()
	h.predictAllergen(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sesame")
}

func TestPredictAllergen_GatewayFailure(t *testing.T) {
	insights := &mockInsightService{
		predictFn: func(_ context.Context, _ string) (models.AllergenPrediction, error) {
			return models.AllergenPrediction{}, gateway.ErrRemoteService
		},
	}
	h := newTestHandler(&service.Services{InsightService: insights})

	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/predict-allergen", nil), "user-1")
	rec := httptest.NewRecorder()
	h.predictAllergen(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to predict allergens from logs. Please try again later.")
}
