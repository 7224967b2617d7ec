// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the tender
// search server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// GCP holds the service-account credentials used to mint identity tokens.
	GCP GCP `envPrefix:"GCP_"`

	// Function describes the remote Cloud Function that serves searches.
	Function Function `envPrefix:"CLOUD_FUNCTION_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint when the binary carries no
	// build version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GCP holds Google Cloud service-account credentials.
//
// When both ClientEmail and PrivateKey are empty, Application Default
// Credentials are used instead.
type GCP struct {
	// ClientEmail is the service-account e-mail, used as the issuer and
	// subject of the signed token assertion.
	// Env: GCP_CLIENT_EMAIL
	ClientEmail string `env:"CLIENT_EMAIL"`

	// PrivateKey is the PEM-encoded RSA private key of the service account.
	// Literal "\n" sequences are turned into newlines during loading, so the
	// key can be passed on a single line.
	// Env: GCP_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// PrivateKeyID is the optional key identifier placed in the "kid" header
	// of the signed assertion.
	// Env: GCP_PRIVATE_KEY_ID
	PrivateKeyID string `env:"PRIVATE_KEY_ID"`

	// ProjectID is the Google Cloud project the service account belongs to.
	// Env: GCP_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// TokenURI is the OAuth2 token endpoint used to exchange the signed
	// assertion for an identity token.
	// Env: GCP_TOKEN_URI
	TokenURI string `env:"TOKEN_URI"`
}

// Function describes the remote search function.
type Function struct {
	// URL is the HTTPS endpoint of the function. It is also used as the
	// audience of the identity token.
	// Env: CLOUD_FUNCTION_URL
	URL string `env:"URL"`

	// RequestTimeout bounds a single outbound call, token exchange included.
	// Env: CLOUD_FUNCTION_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
