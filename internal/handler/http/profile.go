package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/internal/utils"
	"github.com/safebite/safebite/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(ctx, callerID, callerID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			utils.WriteJSON(w, map[string]string{"message": "Profile not found"}, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error reading profile")
		utils.WriteJSONError(w, "error reading profile", statusFromError(err))
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	h.saveProfile(w, r, http.StatusCreated, "Profile created successfully")
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	h.saveProfile(w, r, http.StatusOK, "Profile updated successfully")
}

// saveProfile handles both the initial POST and the merging PUT. The storage
// semantics are identical (merge-write); only the response shape differs.
func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request, successStatus int, successMessage string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	merged, err := h.services.ProfileService.SaveProfile(ctx, callerID, callerID, profile)
	if err != nil {
		log.Err(err).Msg("error saving profile")
		utils.WriteJSONError(w, "error saving profile", statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]any{
		"message": successMessage,
		"profile": merged,
	}, successStatus)
}
