package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/safebite/safebite/internal/gateway"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/service"
	"github.com/safebite/safebite/internal/utils"
	"github.com/safebite/safebite/models"
)

// The three AI analysis endpoints. Each one is read-only with respect to
// stored documents: a failed gateway call changes nothing.

func (h *Handler) analyzeText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	var req models.AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.InsightService.AnalyzeText(ctx, callerID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			utils.WriteJSONError(w, "No text provided for analysis", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("text analysis failed")
		utils.WriteJSONError(w, "Failed to get analysis from AI. Please try again.", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) predictiveAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	insights, err := h.services.InsightService.PredictiveAnalytics(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("predictive analytics failed")
		if errors.Is(err, gateway.ErrRemoteService) {
			utils.WriteJSONError(w, "Failed to generate insights from logs. Please try again later.", statusFromError(err))
			return
		}
		utils.WriteJSONError(w, "error generating insights", statusFromError(err))
		return
	}

	utils.WriteJSON(w, insights, http.StatusOK)
}

func (h *Handler) predictAllergen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	prediction, err := h.services.InsightService.PredictAllergen(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("allergen prediction failed")
		if errors.Is(err, gateway.ErrRemoteService) {
			utils.WriteJSONError(w, "Failed to predict allergens from logs. Please try again later.", statusFromError(err))
			return
		}
		utils.WriteJSONError(w, "error predicting allergens", statusFromError(err))
		return
	}

	utils.WriteJSON(w, prediction, http.StatusOK)
}
