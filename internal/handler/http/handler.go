package http

import (
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
