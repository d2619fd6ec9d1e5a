package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or carries values outside their allowed shape.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed is the single answer to every failed
	// credential check. Callers never learn whether the username, password
	// or token was the wrong part.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTokenIsExpiredOrInvalid normalises all token parsing failures:
	// bad signature, wrong issuer, expired, malformed.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps signing failures during token issuance.
	// These indicate a configuration fault, not a client error.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
