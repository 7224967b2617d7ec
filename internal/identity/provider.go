package identity

import (
	"github.com/MKhiriev/go-tender-search/internal/config"
	"github.com/MKhiriev/go-tender-search/internal/logger"
)

// NewTokenProvider picks the provider matching cfg: the service-account
// provider when a client e-mail and private key are configured, Application
// Default Credentials otherwise.
func NewTokenProvider(cfg config.GCP, logger *logger.Logger) (TokenProvider, error) {
	if cfg.HasServiceAccount() {
		return NewServiceAccountProvider(cfg, logger)
	}

	return NewADCProvider(logger), nil
}
