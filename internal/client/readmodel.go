package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/models"
)

// applyNotification folds one subscription message into the document cache.
// Snapshots replace the cached state wholesale. Changes are folded in
// per-topic: the profile document is merged field-wise, a log change is
// appended to the cached list in chronological position, and catalog changes
// replace the whole catalog (the server publishes catalogs as full documents).
func applyNotification(ctx context.Context, cache store.DocumentCache, n models.Notification) error {
	if n.Kind == models.NotificationSnapshot {
		return cache.Put(ctx, n.Topic, n.Payload)
	}

	switch {
	case n.Topic == models.TopicAllergens || n.Topic == models.TopicResources:
		return cache.Put(ctx, n.Topic, n.Payload)

	case strings.HasSuffix(n.Topic, "/profiles/user_profile"):
		return applyProfileChange(ctx, cache, n)

	case strings.HasSuffix(n.Topic, "/logs"):
		return applyLogChange(ctx, cache, n)

	default:
		return fmt.Errorf("unknown topic %q", n.Topic)
	}
}

// applyProfileChange merges the incoming fields over the cached profile, so
// a partial change converges to the same document the server stores.
func applyProfileChange(ctx context.Context, cache store.DocumentCache, n models.Notification) error {
	var cached models.UserProfile
	if data, err := cache.Get(ctx, n.Topic); err == nil {
		if err = json.Unmarshal(data, &cached); err != nil {
			return fmt.Errorf("decode cached profile: %w", err)
		}
	} else if !errors.Is(err, store.ErrDocumentNotCached) {
		return err
	}

	var incoming models.UserProfile
	if err := json.Unmarshal(n.Payload, &incoming); err != nil {
		return fmt.Errorf("decode profile change: %w", err)
	}

	if err := mergo.Merge(&cached, incoming, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge profile change: %w", err)
	}

	merged, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("encode merged profile: %w", err)
	}

	return cache.Put(ctx, n.Topic, merged)
}

// applyLogChange inserts the new entry into the cached list at its
// chronological position.
func applyLogChange(ctx context.Context, cache store.DocumentCache, n models.Notification) error {
	var entries []models.LogEntry
	if data, err := cache.Get(ctx, n.Topic); err == nil {
		if err = json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("decode cached logs: %w", err)
		}
	} else if !errors.Is(err, store.ErrDocumentNotCached) {
		return err
	}

	var entry models.LogEntry
	if err := json.Unmarshal(n.Payload, &entry); err != nil {
		return fmt.Errorf("decode log change: %w", err)
	}

	// The stream is at-least-once around the snapshot boundary: a write that
	// lands while the snapshot is being taken arrives both inside it and as a
	// change. IDs are server-assigned, so a repeated ID is the same entry.
	for _, existing := range entries {
		if existing.ID == entry.ID {
			return nil
		}
	}

	entries = append(entries, entry)
	models.SortLogsChronologically(entries)

	updated, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode updated logs: %w", err)
	}

	return cache.Put(ctx, n.Topic, updated)
}
