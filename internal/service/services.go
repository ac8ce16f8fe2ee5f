package service

import (
	"github.com/safebite/safebite/internal/config"
	"github.com/safebite/safebite/internal/hub"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/store"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	ProfileService ProfileService
	LogService     LogService
	InsightService InsightService
	AlertService   AlertService
}

func NewServices(storages store.Storages, notifications *hub.Hub, generator StructuredGenerator, cfg config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CatalogService: NewCatalogService(storages.CatalogRepository, logger),
		ProfileService: NewProfileService(storages.ProfileRepository, notifications, logger),
		LogService:     NewLogService(storages.LogRepository, notifications, logger),
		InsightService: NewInsightService(storages.LogRepository, storages.CatalogRepository, generator, logger),
		AlertService:   NewAlertService(storages.ProfileRepository, logger),
	}
}
