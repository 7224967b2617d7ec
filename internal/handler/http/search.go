package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/MKhiriev/go-tender-search/internal/utils"
	"github.com/MKhiriev/go-tender-search/models"
)

const maxSearchBodyBytes = 1 << 20

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	request, err := decodeSearchRequest(w, r)
	if err != nil {
		status, message := statusFromDecodeError(err)
		log.Err(err).Msg(message)
		writeResult(w, log, models.Failure[any](status, message))
		return
	}

	log.Debug().Str("query", request.Query).Int("params", len(request.Params)).Msg("search request received")

	writeResult(w, log, h.services.SearchService.Search(ctx, request))
}

// decodeSearchRequest reads the JSON search request. An empty body is an empty
// request.
func decodeSearchRequest(w http.ResponseWriter, r *http.Request) (models.SearchRequest, error) {
	var request models.SearchRequest
	if r.Body == nil {
		return request, nil
	}

	body := http.MaxBytesReader(w, r.Body, maxSearchBodyBytes)
	if err := json.NewDecoder(body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return models.SearchRequest{}, err
	}

	return request, nil
}

// writeResult writes result as JSON with result.Status as the response status.
func writeResult[T any](w http.ResponseWriter, log *logger.Logger, result models.Result[T]) {
	status := result.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	if _, err := utils.WriteJSON(w, result, status); err != nil {
		log.Err(err).Int("status", status).Msg("error writing response")
	}
}
