package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/internal/utils"
)

func (h *Handler) getAllergens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	allergens, err := h.services.CatalogService.GetAllergens(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("error reading allergen catalog")
		utils.WriteJSONError(w, "error reading allergen catalog", statusFromError(err))
		return
	}

	utils.WriteJSON(w, allergens, http.StatusOK)
}

func (h *Handler) getAllergen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	allergenID := chi.URLParam(r, "allergenID")

	allergen, err := h.services.CatalogService.GetAllergen(ctx, callerID, allergenID)
	if err != nil {
		if errors.Is(err, store.ErrAllergenNotFound) {
			utils.WriteJSON(w, map[string]string{"message": "Allergen not found"}, http.StatusNotFound)
			return
		}
		log.Err(err).Str("allergenID", allergenID).Msg("error reading allergen")
		utils.WriteJSONError(w, "error reading allergen", statusFromError(err))
		return
	}

	utils.WriteJSON(w, allergen, http.StatusOK)
}

func (h *Handler) getResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	resources, err := h.services.CatalogService.GetResources(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("error reading educational resources")
		utils.WriteJSONError(w, "error reading educational resources", statusFromError(err))
		return
	}

	utils.WriteJSON(w, resources, http.StatusOK)
}
