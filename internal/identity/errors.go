package identity

import "errors"

var (
	// ErrEmptyAudience is returned when IDToken is called without an audience.
	ErrEmptyAudience = errors.New("empty token audience")

	// ErrInvalidCredentials is returned when the configured service-account
	// credentials cannot be used (missing e-mail, unreadable key).
	ErrInvalidCredentials = errors.New("invalid service account credentials")

	// ErrTokenExchange is returned when the token endpoint cannot be reached
	// or rejects the signed assertion.
	ErrTokenExchange = errors.New("identity token exchange failed")

	// ErrEmptyIDToken is returned when the token endpoint answers without an
	// id_token.
	ErrEmptyIDToken = errors.New("token endpoint returned no id_token")

	// ErrInvalidIDToken is returned when the received id_token cannot be
	// parsed or carries no expiry.
	ErrInvalidIDToken = errors.New("invalid id_token")
)
