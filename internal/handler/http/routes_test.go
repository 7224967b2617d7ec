package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tender-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_SearchRoute(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	h.searchService.EXPECT().
		Search(gomock.Any(), models.SearchRequest{Query: "roads"}).
		Return(models.Success(http.StatusOK, []models.Tender{{ID: "1", Title: "t", Description: "d"}}))

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"query":"roads"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":200,"data":[{"id":"1","title":"t","description":"d"}]}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_SearchRouteRejectsOtherMethods(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodHead} {
		t.Run(method, func(t *testing.T) {
			// no Search expectation: the service must not be reached
			req := httptest.NewRequest(method, "/api/search", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
			if method != http.MethodHead {
				assert.JSONEq(t, `{"status":405,"error":"Method Not Allowed"}`, rr.Body.String())
			}
		})
	}
}

func TestInit_VersionRoute(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	h.appInfoService.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.4.0", rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/version", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
}

func TestInit_MetricsRoute(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestInit_UnknownRoute(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var result models.Result[any]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, models.Failure[any](http.StatusNotFound, "Not Found"), result)
}

func TestInit_PanicBecomesEnvelope(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	h.searchService.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.SearchRequest) models.Result[[]models.Tender] {
			panic("search exploded")
		})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/search", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":500,"error":"Internal Server Error"}`, rr.Body.String())
}

func TestInit_GzipAppliedToSearch(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	h.searchService.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(models.Success(http.StatusNoContent, []models.Tender{}))

	req := httptest.NewRequest(http.MethodPost, "/api/search", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestAllowedMethods(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	assert.Equal(t, []string{http.MethodPost}, allowedMethods(router, "/api/search"))
	assert.Equal(t, []string{http.MethodGet}, allowedMethods(router, "/metrics"))
	assert.Nil(t, allowedMethods(router, "/nope"))
}
