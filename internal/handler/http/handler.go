package http

import (
	"time"

	"github.com/MKhiriev/legacy-vault/internal/config"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        newMetrics(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
