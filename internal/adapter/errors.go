package adapter

import "errors"

var (
	ErrUnsupportedMethod = errors.New("unsupported http method")
	ErrIdentityToken     = errors.New("cannot obtain identity token")
	ErrRequestFailed     = errors.New("remote request failed")

	ErrBadRequest          = errors.New("remote function rejected the request")
	ErrUnauthorized        = errors.New("remote function unauthorized")
	ErrForbidden           = errors.New("remote function forbidden")
	ErrNotFound            = errors.New("remote function not found")
	ErrTooManyRequests     = errors.New("remote function rate limited")
	ErrInternalServerError = errors.New("remote function internal error")
	ErrUnavailable         = errors.New("remote function unavailable")
	ErrUnexpectedStatus    = errors.New("remote function unexpected status")
)
