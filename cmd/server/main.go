package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/safebite/safebite/internal/config"
	"github.com/safebite/safebite/internal/gateway"
	handlerhttp "github.com/safebite/safebite/internal/handler/http"
	"github.com/safebite/safebite/internal/hub"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/server"
	"github.com/safebite/safebite/internal/service"
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

	log := logger.NewLogger("safebite-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	notifications := hub.New(log)
	gemini := gateway.NewClient(cfg.Gateway, log)

	services := service.NewServices(*storages, notifications, gemini, *cfg, log)
	handler := handlerhttp.NewHandler(services, notifications, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
