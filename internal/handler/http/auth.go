package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/service"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/internal/utils"
	"github.com/safebite/safebite/models"
)

// bootstrapAnonymous creates a fresh anonymous account. The response body
// carries the identity and the device secret exactly once; the bearer token
// is returned in the "Authorization" header.
func (h *Handler) bootstrapAnonymous(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, token, err := h.services.AuthService.BootstrapAnonymous(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during anonymous bootstrap")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, user, http.StatusCreated)
}

// resume exchanges an existing identity plus its device secret for a fresh
// bearer token.
func (h *Handler) resume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Resume(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongDeviceSecret):
			log.Err(err).Msg("no user was found/wrong device secret")
			utils.WriteJSONError(w, "invalid identity/device secret", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during session resume")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
