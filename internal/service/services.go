package service

import (
	"github.com/MKhiriev/legacy-vault/internal/config"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/models"
)

// Services bundles the validator server's services.
type Services struct {
	SessionService SessionService
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SessionService: NewSessionService(EnvTokenSource, logger),
		AppInfoService: appInfo,
	}, nil
}
