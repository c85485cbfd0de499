package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/legacy-vault/internal/config"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/models"
)

// appInfoService reports the validator version that clients print next to
// their own.
type appInfoService struct {
	version string
}

// NewAppInfoService resolves the reported version. The configured version
// wins; a binary stamped at link time falls back to its build version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version, source := strings.TrimSpace(cfg.Version), "config"
	if version == "" && build.Stamped() {
		version, source = build.Version, "build"
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("func", "NewAppInfoService").
		Str("version", version).
		Str("source", source).
		Msg("validator version resolved")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
