package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tender-search/internal/adapter"
	"github.com/MKhiriev/go-tender-search/internal/app"
	"github.com/MKhiriev/go-tender-search/internal/config"
	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/MKhiriev/go-tender-search/internal/validators"
	"github.com/MKhiriev/go-tender-search/models"
)

type searchService struct {
	adapter     adapter.FunctionAdapter
	validator   validators.Validator
	functionURL string

	logger *logger.Logger
}

func NewSearchService(functionAdapter adapter.FunctionAdapter, validator validators.Validator, cfg config.Function, logger *logger.Logger) SearchService {
	return &searchService{
		adapter:     functionAdapter,
		validator:   validator,
		functionURL: cfg.URL,
		logger:      logger,
	}
}

func (s *searchService) Search(ctx context.Context, request models.SearchRequest) models.Result[[]models.Tender] {
	log := s.logger.ForContext(ctx)

	response := s.adapter.Call(ctx, http.MethodPost, s.functionURL, request)

	switch response.Status {
	case http.StatusNoContent:
		return models.Success(http.StatusNoContent, []models.Tender{})

	case http.StatusOK:
		tenders, err := s.decodeTenders(ctx, response.Payload())
		if err != nil {
			log.Err(err).Msg("remote function returned an unusable search response")
			return models.Failure[[]models.Tender](http.StatusInternalServerError, err.Error())
		}
		return models.Success(http.StatusOK, tenders)

	default:
		status := response.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		message := response.Error
		if message == "" {
			message = app.MsgUnknownError
		}
		return models.Failure[[]models.Tender](status, message)
	}
}

// decodeTenders parses body as a JSON array of tenders and validates every
// record. The array may also arrive wrapped in a JSON string.
func (s *searchService) decodeTenders(ctx context.Context, body []byte) ([]models.Tender, error) {
	payload := bytes.TrimSpace(body)

	if len(payload) > 0 && payload[0] == '"' {
		var inner string
		if err := json.Unmarshal(payload, &inner); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		payload = bytes.TrimSpace([]byte(inner))
	}

	var records []models.TenderRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array, got null", ErrMalformedResponse)
	}

	if err := s.validator.Validate(ctx, records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return models.TendersFromRecords(records), nil
}
