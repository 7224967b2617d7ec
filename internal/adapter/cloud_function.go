package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-tender-search/internal/app"
	"github.com/MKhiriev/go-tender-search/internal/config"
	"github.com/MKhiriev/go-tender-search/internal/identity"
	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/MKhiriev/go-tender-search/internal/metrics"
	"github.com/MKhiriev/go-tender-search/internal/utils"
	"github.com/MKhiriev/go-tender-search/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type cloudFunctionAdapter struct {
	client  *utils.HTTPClient
	tokens  identity.TokenProvider
	timeout time.Duration

	logger *logger.Logger
}

// NewCloudFunctionAdapter constructs the HTTP implementation of
// [FunctionAdapter]. Every call, token acquisition included, is bounded by
// cfg.RequestTimeout when it is positive.
func NewCloudFunctionAdapter(cfg config.Function, tokens identity.TokenProvider, logger *logger.Logger) FunctionAdapter {
	return &cloudFunctionAdapter{
		client:  utils.NewHTTPClient(0),
		tokens:  tokens,
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}
}

// Call implements [FunctionAdapter].
func (a *cloudFunctionAdapter) Call(ctx context.Context, method, url string, body any) models.Result[json.RawMessage] {
	log := a.logger.ForContext(ctx)
	start := time.Now()

	resp, err := a.call(ctx, method, url, body)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", url).
			Msgf("Failed to fetch data. Error message: %s", err.Error())
		metrics.ObserveRemoteCall(metrics.OutcomeError, 0, failureReason(err), time.Since(start))
		return models.Failure[json.RawMessage](http.StatusInternalServerError, app.MsgFailedToFetchData)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).
			Int("status", resp.StatusCode()).
			Msg("remote function returned an error status")
		metrics.ObserveRemoteCall(metrics.OutcomeResponse, resp.StatusCode(), failureReason(err), time.Since(start))
		return models.Failure[json.RawMessage](resp.StatusCode(), remoteErrorMessage(resp))
	}

	metrics.ObserveRemoteCall(metrics.OutcomeResponse, resp.StatusCode(), metrics.ReasonNone, time.Since(start))
	return models.Success(resp.StatusCode(), json.RawMessage(resp.Body()))
}

func (a *cloudFunctionAdapter) call(ctx context.Context, method, url string, body any) (*resty.Response, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	token, err := a.tokens.IDToken(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIdentityToken, err)
	}

	req := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Accept", "application/json")
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	return resp, nil
}
