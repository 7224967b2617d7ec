// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity mints Google-signed identity (OIDC) tokens used to call
// private Cloud Functions and Cloud Run services.
//
// Two implementations of [TokenProvider] are available:
//   - a service-account provider that signs a JWT assertion with the
//     configured private key and exchanges it at the OAuth2 token endpoint;
//   - an Application Default Credentials provider backed by
//     google.golang.org/api/idtoken, used when no key is configured (for
//     example on Cloud Run, where the metadata server issues the tokens).
//
// Both providers keep one token per audience and reuse it until it is about
// to expire.
package identity

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_provider_mock.go -package=mock

// TokenProvider returns identity tokens scoped to an audience.
type TokenProvider interface {
	// IDToken returns a bearer identity token whose "aud" claim equals
	// audience. It may block on a network round trip when no valid token
	// is cached.
	IDToken(ctx context.Context, audience string) (string, error)
}
