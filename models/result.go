// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the uniform envelope returned by the search pipeline and written
// to HTTP callers as JSON.
//
// Exactly one of Data and Error is populated: successful outcomes carry Data
// (possibly an empty list), failed outcomes carry Error. Data is a pointer so
// that an empty list is still serialized as "data": [] while a failure omits
// the member entirely.
type Result[T any] struct {
	// Status is the HTTP status code of the outcome.
	Status int `json:"status"`

	// Data is the typed payload of a successful outcome.
	Data *T `json:"data,omitempty"`

	// Error is a human-readable message describing a failed outcome.
	Error string `json:"error,omitempty"`
}

// Success builds a Result that carries data.
func Success[T any](status int, data T) Result[T] {
	return Result[T]{Status: status, Data: &data}
}

// Failure builds a Result that carries an error message.
func Failure[T any](status int, message string) Result[T] {
	return Result[T]{Status: status, Error: message}
}

// OK reports whether r carries data rather than an error.
func (r Result[T]) OK() bool {
	return r.Data != nil && r.Error == ""
}

// Payload returns the carried data or the zero value of T for failures.
func (r Result[T]) Payload() T {
	if r.Data == nil {
		var zero T
		return zero
	}
	return *r.Data
}
