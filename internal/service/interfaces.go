// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the tender search server: it
// calls the remote search function through an adapter, interprets its status
// code and validates the returned records.
package service

import (
	"context"

	"github.com/MKhiriev/go-tender-search/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SearchService runs tender searches against the remote search function.
type SearchService interface {
	// Search forwards request to the remote function and returns the
	// outcome as an envelope. It never returns a Go error: every failure is
	// described by the envelope's status and error message.
	Search(ctx context.Context, request models.SearchRequest) models.Result[[]models.Tender]
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
