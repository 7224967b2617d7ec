package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidFunctionConfigs indicates a missing or malformed cloud
	// function URL or timeout.
	ErrInvalidFunctionConfigs = errors.New("invalid cloud function configuration")
	// ErrInvalidGCPConfigs indicates incomplete service-account credentials.
	ErrInvalidGCPConfigs = errors.New("invalid gcp configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
