// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SafeBite Authors

// Package gateway implements the outbound side of the AI analysis
// endpoints: a thin client of the Gemini generateContent API that always
// requests a structured (JSON-schema constrained) completion.
//
// Calls are single-attempt with no automatic retry; any transport failure,
// non-2xx status or malformed completion is reported immediately and never
// touches stored data.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/safebite/safebite/internal/config"
	"github.com/safebite/safebite/internal/logger"
)

// Client talks to the Gemini generateContent endpoint.
type Client struct {
	client *resty.Client
	apiURL string
	apiKey string
	logger *logger.Logger
}

func NewClient(cfg config.Gateway, log *logger.Logger) *Client {
	cli := resty.New().
		SetTimeout(cfg.RequestTimeout)

	return &Client{
		client: cli,
		apiURL: cfg.GeminiAPIURL,
		apiKey: cfg.GeminiAPIKey,
		logger: log,
	}
}

// generateContent wire shapes. Only the fields the application reads are
// modeled.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
	ResponseSchema   any    `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateStructured sends prompt to the model constrained by the given
// response schema and decodes the completion into out.
//
// Returns [ErrRemoteService] (wrapped) when the call fails, the status is
// not 2xx, the response misses the expected candidate structure, or the
// completion is not valid JSON for out.
func (c *Client) GenerateStructured(ctx context.Context, prompt string, schema any, out any) error {
	log := logger.FromContext(ctx)

	body := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		Post(c.apiURL)
	if err != nil {
		log.Err(err).Msg("gemini request failed")
		return fmt.Errorf("%w: %w", ErrRemoteService, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		log.Error().Int("status", resp.StatusCode()).Msg("gemini returned non-2xx status")
		return fmt.Errorf("%w: unexpected status %d", ErrRemoteService, resp.StatusCode())
	}

	var decoded generateResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrRemoteService, err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("%w: response missing expected structure", ErrRemoteService)
	}

	text := decoded.Candidates[0].Content.Parts[0].Text
	if err = json.Unmarshal([]byte(text), out); err != nil {
		log.Err(err).Str("completion", text).Msg("gemini returned non-JSON for structured response")
		return fmt.Errorf("%w: decode structured completion: %w", ErrRemoteService, err)
	}

	return nil
}
