package config

import (
	"errors"
	"time"
)

const (
	defaultHTTPAddress   = "0.0.0.0:8080"
	defaultTokenIssuer   = "safebite"
	defaultTokenDuration = 24 * time.Hour
	defaultGeminiAPIURL  = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
	defaultBaseURL       = "http://localhost:8080"
	defaultCachePath     = "safebite-cache.db"
)

func applyServerDefaults(cfg *ServerConfig) {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Gateway.GeminiAPIURL == "" {
		cfg.Gateway.GeminiAPIURL = defaultGeminiAPIURL
	}
	if cfg.Gateway.RequestTimeout <= 0 {
		cfg.Gateway.RequestTimeout = defaultTimeout
	}
}

func applyClientDefaults(cfg *ClientConfig) {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = defaultBaseURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultTimeout
	}
	if cfg.Storage.CachePath == "" {
		cfg.Storage.CachePath = defaultCachePath
	}
}

// validate checks that every setting without a safe default is present.
func (c *ServerConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, errNoTokenSignKey)
	}
	if c.Storage.DB.DSN == "" {
		errs = append(errs, errNoDatabaseDSN)
	}
	if c.Gateway.GeminiAPIKey == "" {
		errs = append(errs, errNoGeminiAPIKey)
	}

	return errors.Join(errs...)
}

func (c *ClientConfig) validate() error {
	// all client settings have safe defaults
	return nil
}
