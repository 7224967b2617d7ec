// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tender-search/internal/logger"
	"github.com/MKhiriev/go-tender-search/models"
)

// methodNotAllowed returns the handler registered on router via
// [chi.Mux.MethodNotAllowed]. It answers with a 405 envelope and lists the
// methods registered for the requested path in the Allow header.
//
// The lookup compares each route pattern of router against the raw request
// path; parameterised or wildcard segments are not expanded.
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		writeResult(w, logger.FromRequest(r),
			models.Failure[any](http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed)))
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}

		methods := make([]string, 0, len(route.Handlers))
		for method := range route.Handlers {
			methods = append(methods, method)
		}
		slices.Sort(methods)
		return methods
	}
	return nil
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeResult(w, logger.FromRequest(r),
		models.Failure[any](http.StatusNotFound, http.StatusText(http.StatusNotFound)))
}
