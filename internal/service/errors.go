package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrMalformedResponse = errors.New("malformed search response")
	ErrInvalidResponse   = errors.New("invalid search response")
)
