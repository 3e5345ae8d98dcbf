package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the session has expired. Expiry is checked
	// explicitly by the service, not by the parser, so an expired session
	// stays distinguishable from a bad token.
	ErrExpiredToken = errors.New("session expired, please login again")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("token not found")
)
