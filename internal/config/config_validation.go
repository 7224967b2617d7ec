// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults applied by normalize to fields left empty by every source.
const (
	DefaultHTTPAddress            = ":8080"
	DefaultServerRequestTimeout   = 30 * time.Second
	DefaultFunctionRequestTimeout = 20 * time.Second
	DefaultTokenURI               = "https://oauth2.googleapis.com/token"
	DefaultLogLevel               = "debug"
)

// normalize fills defaults and turns escaped newlines of the private key into
// real ones.
func (cfg *StructuredConfig) normalize() {
	cfg.GCP.PrivateKey = strings.ReplaceAll(cfg.GCP.PrivateKey, `\n`, "\n")
	cfg.GCP.ClientEmail = strings.TrimSpace(cfg.GCP.ClientEmail)
	cfg.Function.URL = strings.TrimSpace(cfg.Function.URL)

	if cfg.GCP.TokenURI == "" {
		cfg.GCP.TokenURI = DefaultTokenURI
	}
	if cfg.Function.RequestTimeout == 0 {
		cfg.Function.RequestTimeout = DefaultFunctionRequestTimeout
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
}

// validate checks that the final merged [StructuredConfig] can be used to
// serve searches.
func (cfg *StructuredConfig) validate() error {
	if cfg.Function.URL == "" {
		return fmt.Errorf("%w: cloud function url is required", ErrInvalidFunctionConfigs)
	}
	u, err := url.Parse(cfg.Function.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: cloud function url must be absolute", ErrInvalidFunctionConfigs)
	}
	if cfg.Function.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidFunctionConfigs)
	}

	if (cfg.GCP.ClientEmail == "") != (cfg.GCP.PrivateKey == "") {
		return fmt.Errorf("%w: client email and private key must be set together", ErrInvalidGCPConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

// HasServiceAccount reports whether explicit service-account credentials are
// configured.
func (g GCP) HasServiceAccount() bool {
	return g.ClientEmail != "" && g.PrivateKey != ""
}
