package http

import (
	"github.com/safebite/safebite/internal/hub"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/service"
)

type Handler struct {
	services *service.Services
	hub      *hub.Hub

	logger *logger.Logger
}

func NewHandler(services *service.Services, notifications *hub.Hub, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      notifications,
		logger:   logger,
	}
}
