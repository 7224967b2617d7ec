package service

import (
	"fmt"

	"github.com/MKhiriev/go-tender-search/internal/adapter"
	"github.com/MKhiriev/go-tender-search/internal/config"
	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/MKhiriev/go-tender-search/internal/validators"
)

type Services struct {
	SearchService  SearchService
	AppInfoService AppInfoService
}

// NewServices assembles the services of the server. The search service is
// wrapped with request logging.
func NewServices(functionAdapter adapter.FunctionAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	searchService := NewSearchService(functionAdapter, validators.NewTenderValidator(), cfg.Function, logger)

	return &Services{
		SearchService:  NewSearchLoggingService().Wrap(searchService),
		AppInfoService: appInfoService,
	}, nil
}
