// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// tender search adapter, services and HTTP handlers.
//
// All Msg* constants are human-readable message strings written into the
// "error" member of result envelopes. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgFailedToFetchData is returned when the remote search function could
	// not be called at all: the identity token could not be obtained, the
	// transport failed or the call timed out.
	MsgFailedToFetchData = "Failed to fetch data"

	// MsgUnknownError is returned when the remote function answered with a
	// status the service does not handle and gave no error text.
	MsgUnknownError = "Unknown error"

	// MsgInvalidJSON is returned when the search request body is not valid
	// JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgBodyTooLarge is returned when the search request body exceeds the
	// accepted size.
	MsgBodyTooLarge = "Request body is too large"
)
