// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SafeBite Authors

// Package hub implements the server side of live subscriptions: a per-topic
// registry of subscribers that receives every applied document change and
// fans it out in application order.
package hub

import (
	"sync"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/models"
)

// subscriberBuffer bounds the per-subscriber notification queue. A
// subscriber that stops draining loses its slowest notifications rather
// than blocking delivery to everyone else on the topic.
const subscriberBuffer = 32

// Subscription is one live registration on a topic. Notifications arrive on
// C in the order the hub published them. Stop is idempotent and safe to
// call concurrently; after Stop returns no further notifications are
// delivered and C is eventually closed.
type Subscription struct {
	C <-chan models.Notification

	topic string
	ch    chan models.Notification
	hub   *Hub
	once  sync.Once
}

// Stop cancels the subscription. Calling Stop multiple times, or while the
// hub is concurrently publishing, is safe and does not affect other
// subscriptions on the same or other topics.
func (s *Subscription) Stop() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

// Hub is the topic registry. One Hub serves all users; isolation between
// users comes from the policy check performed before Subscribe is called,
// never from the hub itself.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}
	logger      *logger.Logger
}

func New(log *logger.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[*Subscription]struct{}),
		logger:      log,
	}
}

// Subscribe registers a new subscriber on the topic and returns its
// subscription handle. The caller is expected to deliver a snapshot to the
// subscriber itself before relying on change notifications; the hub only
// carries changes applied after registration.
func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan models.Notification, subscriberBuffer),
		hub:   h,
	}
	sub.C = sub.ch

	h.mu.Lock()
	if h.subscribers[topic] == nil {
		h.subscribers[topic] = make(map[*Subscription]struct{})
	}
	h.subscribers[topic][sub] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug().Str("topic", topic).Msg("subscription opened")
	return sub
}

// Publish delivers a change notification to every subscriber of the topic.
// Within one topic, notifications are delivered in call order; the hub makes
// no ordering promise across topics. A subscriber whose buffer is full is
// skipped for this notification.
func (h *Hub) Publish(notification models.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[notification.Topic] {
		select {
		case sub.ch <- notification:
		default:
			h.logger.Warn().Str("topic", notification.Topic).Msg("subscriber buffer full, dropping notification")
		}
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	if set := h.subscribers[sub.topic]; set != nil {
		delete(set, sub)
		if len(set) == 0 {
			delete(h.subscribers, sub.topic)
		}
	}
	h.mu.Unlock()
	h.logger.Debug().Str("topic", sub.topic).Msg("subscription stopped")
}
