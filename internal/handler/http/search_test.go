package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tender-search/internal/app"
	"github.com/MKhiriev/go-tender-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearch_WritesServiceResult(t *testing.T) {
	tests := []struct {
		name       string
		result     models.Result[[]models.Tender]
		wantStatus int
		wantBody   string
	}{
		{
			name:       "tenders found",
			result:     models.Success(http.StatusOK, []models.Tender{{ID: "1", Title: "Road", Description: "Ring road"}}),
			wantStatus: http.StatusOK,
			wantBody:   `{"status":200,"data":[{"id":"1","title":"Road","description":"Ring road"}]}`,
		},
		{
			name:       "no content has no body",
			result:     models.Success(http.StatusNoContent, []models.Tender{}),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "validation failure",
			result:     models.Failure[[]models.Tender](http.StatusInternalServerError, `record 0: invalid tender: field "id" is required`),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":500,"error":"record 0: invalid tender: field \"id\" is required"}`,
		},
		{
			name:       "network failure",
			result:     models.Failure[[]models.Tender](http.StatusInternalServerError, app.MsgFailedToFetchData),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":500,"error":"Failed to fetch data"}`,
		},
		{
			name:       "remote status passthrough",
			result:     models.Failure[[]models.Tender](http.StatusTooManyRequests, "slow down"),
			wantStatus: http.StatusTooManyRequests,
			wantBody:   `{"status":429,"error":"slow down"}`,
		},
		{
			name:       "missing status becomes 500",
			result:     models.Result[[]models.Tender]{Error: "Unknown error"},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":0,"error":"Unknown error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			h.searchService.EXPECT().Search(gomock.Any(), gomock.Any()).Return(tt.result)

			req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"road"}`))
			rr := httptest.NewRecorder()
			h.search(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody == "" {
				assert.Zero(t, rr.Body.Len())
				return
			}
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestSearch_DecodesRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.SearchRequest
	}{
		{
			name: "query only",
			body: `{"query":"bridge"}`,
			want: models.SearchRequest{Query: "bridge"},
		},
		{
			name: "extra parameters kept",
			body: `{"query":"bridge","region":"north","limit":10}`,
			want: models.SearchRequest{
				Query: "bridge",
				Params: map[string]json.RawMessage{
					"region": json.RawMessage(`"north"`),
					"limit":  json.RawMessage(`10`),
				},
			},
		},
		{
			name: "empty body",
			body: "",
			want: models.SearchRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			h.searchService.EXPECT().Search(gomock.Any(), tt.want).
				Return(models.Success(http.StatusNoContent, []models.Tender{}))

			req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.search(rr, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
		})
	}
}

func TestSearch_InvalidJSON(t *testing.T) {
	for _, body := range []string{`{"query":`, `not json`, `{"query":5}`} {
		t.Run(body, func(t *testing.T) {
			// no Search expectation: invalid requests never reach the service
			h := newTestHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
			rr := httptest.NewRecorder()
			h.search(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"status":400,"error":"Invalid JSON was passed"}`, rr.Body.String())
		})
	}
}

func TestSearch_BodyTooLarge(t *testing.T) {
	h := newTestHandler(t)

	body := `{"query":"` + strings.Repeat("a", maxSearchBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.search(rr, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.JSONEq(t, `{"status":413,"error":"Request body is too large"}`, rr.Body.String())
}

func TestStatusFromDecodeError(t *testing.T) {
	status, msg := statusFromDecodeError(&http.MaxBytesError{Limit: 1})
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, app.MsgBodyTooLarge, msg)

	status, msg = statusFromDecodeError(json.Unmarshal([]byte("{"), &struct{}{}))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, app.MsgInvalidJSON, msg)
}
