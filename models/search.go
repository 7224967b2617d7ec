// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"maps"
)

const searchQueryKey = "query"

// SearchRequest is the body forwarded to the remote search function.
//
// Query is the free-form search text. Any other JSON members sent by the
// caller are kept in Params and forwarded unchanged, so new search parameters
// do not require a change in this service. No validation is applied.
type SearchRequest struct {
	Query  string                     `json:"query"`
	Params map[string]json.RawMessage `json:"-"`
}

// MarshalJSON writes Query and every entry of Params as members of a single
// JSON object. Query always wins over a "query" entry in Params.
func (r SearchRequest) MarshalJSON() ([]byte, error) {
	obj := make(map[string]json.RawMessage, len(r.Params)+1)
	maps.Copy(obj, r.Params)

	query, err := json.Marshal(r.Query)
	if err != nil {
		return nil, fmt.Errorf("error marshaling search query: %w", err)
	}
	obj[searchQueryKey] = query

	return json.Marshal(obj)
}

// UnmarshalJSON reads the "query" member into Query and keeps all remaining
// members in Params.
func (r *SearchRequest) UnmarshalJSON(b []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	var query string
	if raw, ok := obj[searchQueryKey]; ok {
		if err := json.Unmarshal(raw, &query); err != nil {
			return fmt.Errorf("error decoding search query: %w", err)
		}
		delete(obj, searchQueryKey)
	}

	r.Query = query
	r.Params = nil
	if len(obj) > 0 {
		r.Params = obj
	}

	return nil
}
