package config

import (
	"flag"
	"os"
	"time"
)

// parseServerFlags collects server configuration from command-line flags.
// A flag left at its zero value does not override the same field from the
// environment during the merge.
func parseServerFlags() *ServerConfig {
	fs := flag.NewFlagSet("safebite-server", flag.ContinueOnError)

	address := fs.String("a", "", "HTTP server address host:port")
	dsn := fs.String("d", "", "PostgreSQL DSN of the document store")
	signKey := fs.String("k", "", "JWT token sign key")
	geminiKey := fs.String("g", "", "Gemini API key")
	requestTimeout := fs.Duration("t", 0, "inbound request timeout")

	// errors already reported by the FlagSet itself
	_ = fs.Parse(os.Args[1:])

	return &ServerConfig{
		App:     App{TokenSignKey: *signKey},
		Storage: Storage{DB: DB{DSN: *dsn}},
		Server:  Server{HTTPAddress: *address, RequestTimeout: *requestTimeout},
		Gateway: Gateway{GeminiAPIKey: *geminiKey},
	}
}

// parseClientFlags collects client configuration from command-line flags.
func parseClientFlags() *ClientConfig {
	fs := flag.NewFlagSet("safebite-client", flag.ContinueOnError)

	baseURL := fs.String("s", "", "base URL of the safebite server")
	cachePath := fs.String("c", "", "path of the local document cache")
	sessionPath := fs.String("p", "", "path of the persisted session file")
	requestTimeout := fs.Duration("t", 0, "outbound request timeout")

	_ = fs.Parse(os.Args[1:])

	return &ClientConfig{
		Adapter: Adapter{BaseURL: *baseURL, RequestTimeout: *requestTimeout},
		Storage: ClientStorage{CachePath: *cachePath, SessionPath: *sessionPath},
	}
}

// defaultTimeout is applied wherever a timeout is left unset.
const defaultTimeout = 30 * time.Second
