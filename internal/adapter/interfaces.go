// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the remote search
// function.
//
// The primary abstraction is [FunctionAdapter], which hides identity-token
// acquisition, request encoding and status mapping from the service layer.
// The package ships an HTTP implementation built on resty
// ([NewCloudFunctionAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers and logs can use [errors.Is] for
// transport-agnostic error handling.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-tender-search/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/function_adapter_mock.go -package=mock

// FunctionAdapter issues identity-token authenticated calls to a remote
// function.
type FunctionAdapter interface {
	// Call sends one request with the given method ("GET" or "POST") to url,
	// authenticated with an identity token whose audience is url. body, when
	// non-nil, is sent as JSON.
	//
	// The result never carries a Go error: a 2xx response yields its status
	// and raw body, a non-2xx response yields its status and an error
	// message, and any token, transport or method failure yields
	// {500, "Failed to fetch data"}.
	Call(ctx context.Context, method, url string, body any) models.Result[json.RawMessage]
}
