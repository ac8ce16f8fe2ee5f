// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SafeBite Authors

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/safebite/safebite/internal/adapter"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/internal/workers"
	"github.com/safebite/safebite/models"
)

// Session owns one authenticated connection to the server: the identity, the
// bearer token, the live subscriptions, and the local read-model they feed.
// Reads are served from the document cache; writes go straight to the server
// and come back through the subscription stream, so a caller never waits for
// its own write to converge.
type Session struct {
	adapter  adapter.ServerAdapter
	storages *store.ClientStorages
	logger   *logger.Logger

	mu     sync.Mutex
	userID string
	subs   []*adapter.Subscription
}

func NewSession(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, log *logger.Logger) *Session {
	return &Session{
		adapter:  serverAdapter,
		storages: storages,
		logger:   log.GetChildLogger(),
	}
}

// Start establishes the identity and opens the live subscriptions. A stored
// session is resumed; a missing or rejected one falls back to bootstrapping a
// fresh anonymous account.
func (s *Session) Start(ctx context.Context) error {
	userID, err := s.establishIdentity(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()

	return s.openSubscriptions(ctx, userID)
}

// establishIdentity resumes the persisted session or bootstraps a new one.
// Bootstrapping wipes the cache first: the old identity's documents must not
// leak into the new one's read-model.
func (s *Session) establishIdentity(ctx context.Context) (string, error) {
	session, err := s.storages.SessionStore.LoadSession()
	if err == nil {
		token, resumeErr := s.adapter.Resume(ctx, models.User{
			UserID:       session.UserID,
			DeviceSecret: session.DeviceSecret,
		})
		if resumeErr == nil {
			s.logger.Info().Str("user_id", session.UserID).Msg("session resumed")
			session.Token = token.SignedString
			session.At = time.Now()
			if saveErr := s.storages.SessionStore.SaveSession(session); saveErr != nil {
				s.logger.Warn().Err(saveErr).Msg("failed to persist resumed session")
			}
			return session.UserID, nil
		}
		if !errors.Is(resumeErr, adapter.ErrUnauthorized) && !errors.Is(resumeErr, adapter.ErrNotFound) {
			return "", fmt.Errorf("resume session: %w", resumeErr)
		}
		s.logger.Warn().Err(resumeErr).Msg("stored session rejected, bootstrapping new identity")
	} else if !errors.Is(err, store.ErrLocalSessionNotFound) {
		return "", fmt.Errorf("load session: %w", err)
	}

	if err = s.storages.DocumentCache.Clear(ctx); err != nil {
		return "", fmt.Errorf("clear cache before bootstrap: %w", err)
	}

	user, err := s.adapter.Bootstrap(ctx)
	if err != nil {
		return "", fmt.Errorf("bootstrap identity: %w", err)
	}

	s.logger.Info().Str("user_id", user.UserID).Msg("anonymous identity bootstrapped")

	err = s.storages.SessionStore.SaveSession(store.ClientSession{
		UserID:       user.UserID,
		DeviceSecret: user.DeviceSecret,
		Token:        s.adapter.Token(),
		At:           time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}

	return user.UserID, nil
}

// openSubscriptions opens one stream per synced topic and runs a pump worker
// for each. Subscriptions are independent: one failing to open stops the
// startup, but a stream that later drops does not take the others with it.
func (s *Session) openSubscriptions(ctx context.Context, userID string) error {
	topics := []string{
		models.TopicAllergens,
		models.TopicResources,
		models.ProfileTopic(userID),
		models.LogsTopic(userID),
	}

	pumps := make([]workers.Worker, 0, len(topics))
	subs := make([]*adapter.Subscription, 0, len(topics))
	for _, topic := range topics {
		sub, err := s.adapter.Subscribe(ctx, topic)
		if err != nil {
			for _, opened := range subs {
				opened.Stop()
			}
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		subs = append(subs, sub)
		pumps = append(pumps, &subscriptionPump{
			sub:    sub,
			cache:  s.storages.DocumentCache,
			logger: s.logger,
		})
	}

	s.mu.Lock()
	s.subs = subs
	s.mu.Unlock()

	workers.NewWorkers(pumps...).Run()

	return nil
}

// Stop closes all live subscriptions. The cache and the session file are
// kept so the next Start resumes from the converged state.
func (s *Session) Stop() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Stop()
	}
}

// SignOut stops the subscriptions and destroys all identity-derived local
// state: the document cache and the persisted session. The server-side
// account is untouched; without the device secret it is simply unreachable.
func (s *Session) SignOut(ctx context.Context) error {
	s.Stop()

	if err := s.storages.DocumentCache.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	if err := s.storages.SessionStore.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.userID = ""
	s.mu.Unlock()

	s.logger.Info().Msg("signed out")

	return nil
}

// UserID returns the identity of the active session, or an empty string
// before Start succeeds.
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Profile returns the profile read-model. Before the first snapshot lands
// the read falls through to the server; a profile missing on both sides
// reads as the zero profile.
func (s *Session) Profile(ctx context.Context) (models.UserProfile, error) {
	topic := models.ProfileTopic(s.UserID())

	var profile models.UserProfile
	found, err := s.readCached(ctx, topic, &profile)
	if err != nil || found {
		return profile, err
	}

	profile, err = s.adapter.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.UserProfile{}, nil
		}
		return models.UserProfile{}, err
	}

	s.primeCache(ctx, topic, profile)
	return profile, nil
}

// Logs returns the log entries in chronological order, reading through to
// the server before the first snapshot lands.
func (s *Session) Logs(ctx context.Context) ([]models.LogEntry, error) {
	topic := models.LogsTopic(s.UserID())

	var entries []models.LogEntry
	found, err := s.readCached(ctx, topic, &entries)
	if err != nil || found {
		return entries, err
	}

	entries, err = s.adapter.GetLogs(ctx)
	if err != nil {
		return nil, err
	}

	s.primeCache(ctx, topic, entries)
	return entries, nil
}

// Allergens returns the allergen catalog, reading through to the server
// before the first snapshot lands.
func (s *Session) Allergens(ctx context.Context) ([]models.Allergen, error) {
	var allergens []models.Allergen
	found, err := s.readCached(ctx, models.TopicAllergens, &allergens)
	if err != nil || found {
		return allergens, err
	}

	allergens, err = s.adapter.GetAllergens(ctx)
	if err != nil {
		return nil, err
	}

	s.primeCache(ctx, models.TopicAllergens, allergens)
	return allergens, nil
}

// Resources returns the educational resource catalog, reading through to
// the server before the first snapshot lands.
func (s *Session) Resources(ctx context.Context) ([]models.EducationalResource, error) {
	var resources []models.EducationalResource
	found, err := s.readCached(ctx, models.TopicResources, &resources)
	if err != nil || found {
		return resources, err
	}

	resources, err = s.adapter.GetResources(ctx)
	if err != nil {
		return nil, err
	}

	s.primeCache(ctx, models.TopicResources, resources)
	return resources, nil
}

// Allergen fetches one catalog entry from the server. The detail view is
// not a synced topic; the catalog subscription carries the full list.
func (s *Session) Allergen(ctx context.Context, allergenID string) (models.Allergen, error) {
	return s.adapter.GetAllergen(ctx, allergenID)
}

func (s *Session) readCached(ctx context.Context, topic string, out any) (bool, error) {
	data, err := s.storages.DocumentCache.Get(ctx, topic)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotCached) {
			return false, nil
		}
		return false, err
	}
	if err = json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", topic, err)
	}
	return true, nil
}

// primeCache stores a server-fetched document so later reads are local.
// A snapshot that landed while the fetch was in flight wins: it is at least
// as fresh and the stream keeps it converged.
func (s *Session) primeCache(ctx context.Context, topic string, doc any) {
	if _, err := s.storages.DocumentCache.Get(ctx, topic); err == nil {
		return
	}

	data, err := json.Marshal(doc)
	if err == nil {
		err = s.storages.DocumentCache.Put(ctx, topic, data)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("topic", topic).Msg("failed to prime cache")
	}
}

// SaveProfile merge-writes the profile on the server. The returned document
// is the server's merged state; the local read-model converges through the
// profile subscription, not through this call.
func (s *Session) SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	return s.adapter.SaveProfile(ctx, profile)
}

// AppendLog stores one log entry on the server and returns the assigned ID.
// The local read-model converges through the logs subscription.
func (s *Session) AppendLog(ctx context.Context, req models.LogAppendRequest) (string, error) {
	return s.adapter.AppendLog(ctx, req)
}

// AnalyzeText forwards a free-text analysis request to the server.
func (s *Session) AnalyzeText(ctx context.Context, req models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error) {
	return s.adapter.AnalyzeText(ctx, req)
}

// PredictiveAnalytics requests log-derived insights from the server.
func (s *Session) PredictiveAnalytics(ctx context.Context) (models.PredictiveInsights, error) {
	return s.adapter.PredictiveAnalytics(ctx)
}

// PredictAllergen requests candidate allergen predictions from the server.
func (s *Session) PredictAllergen(ctx context.Context) (models.AllergenPrediction, error) {
	return s.adapter.PredictAllergen(ctx)
}

// Alerts fetches the targeted alert feed from the server. Alerts are not
// cached: the feed is already filtered against the caller's profile and is
// cheap to refetch.
func (s *Session) Alerts(ctx context.Context) ([]models.Alert, error) {
	return s.adapter.GetAlerts(ctx)
}

// subscriptionPump drains one subscription channel into the document cache.
// It exits when the subscription's channel closes.
type subscriptionPump struct {
	sub    *adapter.Subscription
	cache  store.DocumentCache
	logger *logger.Logger
}

func (p *subscriptionPump) Run() {
	go func() {
		for notification := range p.sub.C {
			if err := applyNotification(context.Background(), p.cache, notification); err != nil {
				p.logger.Error().Err(err).
					Str("topic", notification.Topic).
					Str("kind", notification.Kind).
					Msg("failed to apply notification")
			}
		}
		p.logger.Debug().Str("topic", p.sub.Topic()).Msg("subscription stream closed")
	}()
}
