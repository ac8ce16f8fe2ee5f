package http

import (
	"net/http"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/utils"
)

func (h *Handler) getAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	alerts, err := h.services.AlertService.GetAlerts(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("error reading alerts")
		utils.WriteJSONError(w, "error reading alerts", statusFromError(err))
		return
	}

	utils.WriteJSON(w, alerts, http.StatusOK)
}
