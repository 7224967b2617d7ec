// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks data received from the remote search function
// before it reaches callers.
//
// Validator is the generic entry point; TenderValidator is the implementation
// for tender records. Services depend on the interface and receive the
// implementation at construction time, so tests can swap it out.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
