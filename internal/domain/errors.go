package domain

import "errors"

var (
	// ErrMissingHeader is returned when a required provider header is absent from the request
	ErrMissingHeader = errors.New("required header missing")

	// ErrSourceNotConfigured is returned when no active webhook source exists for a provider
	ErrSourceNotConfigured = errors.New("webhook source not configured")

	// ErrInvalidSignature is returned when signature verification fails
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrEventNotFound is returned when a webhook event is not found by id
	ErrEventNotFound = errors.New("webhook event not found")
)
