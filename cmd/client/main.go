package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/safebite/safebite/internal/adapter"
	"github.com/safebite/safebite/internal/client"
	"github.com/safebite/safebite/internal/config"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewClientLogger("safebite-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client storages")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	session := client.NewSession(serverAdapter, storages, log)

	app := client.NewApp(session, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client exited with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
