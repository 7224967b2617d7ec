package service

import (
	"context"

	"github.com/MKhiriev/go-tender-search/internal/config"
	"github.com/MKhiriev/go-tender-search/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

// GetAppVersion returns the version the service was configured with.
func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	s.logger.ForContext(ctx).Debug().Str("version", s.appVersion).Msg("app version requested")
	return s.appVersion
}
