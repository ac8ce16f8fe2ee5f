package http

import (
	"encoding/json"
	"net/http"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/utils"
	"github.com/safebite/safebite/models"
)

func (h *Handler) getLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	entries, err := h.services.LogService.GetLogs(ctx, callerID, callerID)
	if err != nil {
		log.Err(err).Msg("error reading logs")
		utils.WriteJSONError(w, "error reading logs", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) appendLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	var req models.LogAppendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.LogService.AppendLog(ctx, callerID, callerID, req)
	if err != nil {
		log.Err(err).Str("type", req.Type).Msg("error appending log")
		utils.WriteJSONError(w, "error appending log", statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]string{
		"message": "Log added successfully",
		"id":      stored.ID,
	}, http.StatusCreated)
}
