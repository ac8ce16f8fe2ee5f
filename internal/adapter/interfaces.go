// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SafeBite Authors

// Package adapter provides transport-layer abstractions for communicating
// with the SafeBite server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// application from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) that also opens websocket streams
// for live subscriptions.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/safebite/safebite/models"
)

// ServerAdapter defines transport-agnostic communication with the SafeBite
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Bootstrap or Resume.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Bootstrap creates a fresh anonymous account on the server. The returned
	// user carries the identity and the device secret; the secret is only
	// ever transmitted this once and must be persisted by the caller.
	Bootstrap(ctx context.Context) (models.User, error)

	// Resume exchanges a stored identity plus device secret for a fresh
	// bearer token.
	Resume(ctx context.Context, user models.User) (models.Token, error)

	GetAllergens(ctx context.Context) ([]models.Allergen, error)
	GetAllergen(ctx context.Context, allergenID string) (models.Allergen, error)
	GetResources(ctx context.Context) ([]models.EducationalResource, error)

	// GetProfile fetches the caller's profile document. A server-side missing
	// profile is returned as [ErrNotFound]; callers treat it as an empty
	// default profile.
	GetProfile(ctx context.Context) (models.UserProfile, error)

	// SaveProfile merge-writes the supplied fields and returns the merged
	// document as stored.
	SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)

	GetLogs(ctx context.Context) ([]models.LogEntry, error)

	// AppendLog stores one log entry server-side and returns the assigned
	// document ID.
	AppendLog(ctx context.Context, req models.LogAppendRequest) (string, error)

	AnalyzeText(ctx context.Context, req models.AnalyzeTextRequest) (models.AnalyzeTextResponse, error)
	PredictiveAnalytics(ctx context.Context) (models.PredictiveInsights, error)
	PredictAllergen(ctx context.Context) (models.AllergenPrediction, error)
	GetAlerts(ctx context.Context) ([]models.Alert, error)

	// Subscribe opens a live stream of one topic: a snapshot notification
	// followed by changes. The returned subscription's Stop is idempotent and
	// independent of any other open subscription.
	Subscribe(ctx context.Context, topic string) (*Subscription, error)
}
