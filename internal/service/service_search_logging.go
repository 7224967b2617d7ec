package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/MKhiriev/go-tender-search/models"
)

// SearchServiceWrapper defines middleware composition for SearchService.
// Implementations wrap an existing SearchService to add behavior such as
// logging.
type SearchServiceWrapper interface {
	Wrap(SearchService) SearchService
}

// SearchLoggingService logs the outcome and duration of every search with the
// request-scoped logger.
type SearchLoggingService struct {
	inner SearchService
}

func NewSearchLoggingService() SearchServiceWrapper {
	return &SearchLoggingService{}
}

func (s *SearchLoggingService) Search(ctx context.Context, request models.SearchRequest) models.Result[[]models.Tender] {
	log := logger.FromContext(ctx)
	start := time.Now()

	result := s.inner.Search(ctx, request)

	event := log.Info()
	if !result.OK() {
		event = log.Warn().Str("error", result.Error)
	}
	event.
		Str("query", request.Query).
		Int("params", len(request.Params)).
		Int("status", result.Status).
		Int("tenders", len(result.Payload())).
		Dur("duration", time.Since(start)).
		Msg("search finished")

	return result
}

func (s *SearchLoggingService) Wrap(inner SearchService) SearchService {
	s.inner = inner
	return s
}
