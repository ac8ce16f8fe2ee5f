package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/safebite/safebite/internal/utils"
	"github.com/safebite/safebite/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client  *resty.Client
	baseURL string

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli, baseURL: baseURL}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Bootstrap(ctx context.Context) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		Post("/api/auth/anonymous")
	if err != nil {
		return models.User{}, fmt.Errorf("%w: bootstrap request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode bootstrap response: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("bootstrap parse bearer token: %w", err)
	}
	h.SetToken(token)

	return user, nil
}

func (h *httpServerAdapter) Resume(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/resume")
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: resume request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("resume parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("resume parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) GetAllergens(ctx context.Context) ([]models.Allergen, error) {
	var allergens []models.Allergen
	if err := h.getJSON(ctx, "/api/allergens", &allergens); err != nil {
		return nil, err
	}
	return allergens, nil
}

func (h *httpServerAdapter) GetAllergen(ctx context.Context, allergenID string) (models.Allergen, error) {
	var allergen models.Allergen
	if err := h.getJSON(ctx, "/api/allergens/"+allergenID, &allergen); err != nil {
		return models.Allergen{}, err
	}
	return allergen, nil
}

func (h *httpServerAdapter) GetResources(ctx context.Context) ([]models.EducationalResource, error) {
	var resources []models.EducationalResource
	if err := h.getJSON(ctx, "/api/educational-resources", &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := h.getJSON(ctx, "/api/user/profile", &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (h *httpServerAdapter) SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Put("/api/user/profile")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: save profile request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	var saved struct {
		Profile models.UserProfile `json:"profile"`
	}
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode save profile response: %w", err)
	}

	return saved.Profile, nil
}

func (h *httpServerAdapter) GetLogs(ctx context.Context) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	if err := h.getJSON(ctx, "/api/user/logs", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *httpServerAdapter) AppendLog(ctx context.Context, req models.LogAppendRequest) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/user/logs")
	if err != nil {
		return "", fmt.Errorf("%w: append log request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode append log response: %w", err)
	}

	return created.ID, nil
}

func (h *httpServerAdapter) AnalyzeText(ctx context.Context, req models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/analyze-text")
	if err != nil {
		return models.AnalyzeTextResponse{}, fmt.Errorf("%w: analyze text request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AnalyzeTextResponse{}, err
	}

	var analysis models.AnalyzeTextResponse
	if err = json.Unmarshal(resp.Body(), &analysis); err != nil {
		return models.AnalyzeTextResponse{}, fmt.Errorf("%w: decode analysis response: %w", ErrRemoteService, err)
	}

	return analysis, nil
}

func (h *httpServerAdapter) PredictiveAnalytics(ctx context.Context) (models.PredictiveInsights, error) {
	var insights models.PredictiveInsights
	if err := h.getJSON(ctx, "/api/predictive-analytics", &insights); err != nil {
		return models.PredictiveInsights{}, err
	}
	return insights, nil
}

func (h *httpServerAdapter) PredictAllergen(ctx context.Context) (models.AllergenPrediction, error) {
	var prediction models.AllergenPrediction
	if err := h.getJSON(ctx, "/api/predict-allergen", &prediction); err != nil {
		return models.AllergenPrediction{}, err
	}
	return prediction, nil
}

func (h *httpServerAdapter) GetAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := h.getJSON(ctx, "/api/alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("%w: get %s: %w", ErrNetwork, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
