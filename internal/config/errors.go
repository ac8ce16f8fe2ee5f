package config

import "errors"

var (
	errNoTokenSignKey = errors.New("token sign key is required: set APP_TOKEN_SIGN_KEY or -k")
	errNoDatabaseDSN  = errors.New("database DSN is required: set STORAGE_DB_DATABASE_URI or -d")
	errNoGeminiAPIKey = errors.New("gemini API key is required: set GATEWAY_GEMINI_API_KEY or -g")
)
