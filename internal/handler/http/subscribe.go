// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SafeBite Authors

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/internal/utils"
	"github.com/safebite/safebite/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const pingInterval = 25 * time.Second

// subscribe upgrades the connection to a websocket and streams one topic:
// first a snapshot of the topic's current state, then every change the
// server applies, in order. The topic is taken from the "topic" query
// parameter; a caller can only open topics its identity may read, which the
// snapshot call enforces before the connection is upgraded.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, "Authorization token required", http.StatusUnauthorized)
		return
	}

	topic := r.URL.Query().Get("topic")

	// Register with the hub before taking the snapshot so a write landing in
	// between is delivered as a change instead of being lost.
	sub := h.hub.Subscribe(topic)
	defer sub.Stop()

	snapshot, err := h.snapshotForTopic(ctx, callerID, topic)
	if err != nil {
		log.Err(err).Str("topic", topic).Msg("subscription snapshot failed")
		if errors.Is(err, ErrUnknownTopic) {
			utils.WriteJSONError(w, "unknown subscription topic", http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, "error opening subscription", statusFromError(err))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	if err = conn.WriteJSON(models.Notification{
		Topic:   topic,
		Kind:    models.NotificationSnapshot,
		Payload: snapshot,
	}); err != nil {
		log.Err(err).Str("topic", topic).Msg("snapshot write failed")
		return
	}

	done := make(chan struct{})

	// writer: one goroutine owns all writes to the connection
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case notification, open := <-sub.C:
				if !open {
					return
				}
				if err := conn.WriteJSON(notification); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			log.Debug().Str("topic", topic).Msg("subscription closed")
			return
		}
	}
}

// snapshotForTopic resolves a topic to its current state, JSON-encoded.
// Every branch goes through the corresponding service call so the access
// policy is applied exactly as on the plain read endpoints.
func (h *Handler) snapshotForTopic(ctx context.Context, callerID, topic string) (json.RawMessage, error) {
	var state any

	switch topic {
	case models.TopicAllergens:
		allergens, err := h.services.CatalogService.GetAllergens(ctx, callerID)
		if err != nil {
			return nil, err
		}
		state = allergens

	case models.TopicResources:
		resources, err := h.services.CatalogService.GetResources(ctx, callerID)
		if err != nil {
			return nil, err
		}
		state = resources

	case models.ProfileTopic(callerID):
		profile, err := h.services.ProfileService.GetProfile(ctx, callerID, callerID)
		if err != nil && !errors.Is(err, store.ErrProfileNotFound) {
			return nil, err
		}
		// a missing profile is an empty snapshot, not an error
		state = profile

	case models.LogsTopic(callerID):
		entries, err := h.services.LogService.GetLogs(ctx, callerID, callerID)
		if err != nil {
			return nil, err
		}
		state = entries

	default:
		return nil, ErrUnknownTopic
	}

	return json.Marshal(state)
}
