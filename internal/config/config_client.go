package config

import "time"

// ClientConfig is the top-level configuration container for the companion
// client binary.
type ClientConfig struct {
	// Adapter holds settings of the connection to the safebite server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings of the local document cache.
	Storage ClientStorage `envPrefix:"STORAGE_"`

	// App holds client-side application settings.
	App ClientApp `envPrefix:"APP_"`
}

// Adapter holds configuration of the HTTP and websocket connection between
// the client and the server.
type Adapter struct {
	// BaseURL is the root URL of the safebite server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request. Live subscriptions
	// are exempt: they are expected to remain open indefinitely.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage holds settings of the client's local SQLite cache.
type ClientStorage struct {
	// CachePath is the path of the SQLite database file the client mirrors
	// server documents into. ":memory:" keeps the cache ephemeral.
	// Env: STORAGE_CACHE_PATH
	CachePath string `env:"CACHE_PATH"`

	// SessionPath is the file the client persists its identity and device
	// secret into between runs. Empty disables session resume.
	// Env: STORAGE_SESSION_PATH
	SessionPath string `env:"SESSION_PATH"`
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// environment variables and command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	return newClientConfigBuilder().
		withEnv().
		withFlags().
		build()
}
