// Package auth provides token and password services for the books API.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT containing the user's identity.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID string) (string, error)

	// ValidateToken verifies the token signature and decodes the claims.
	// Signature verification deliberately skips the built-in expiry check;
	// the service compares expiry itself so it can return ErrExpiredToken
	// distinct from ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded payload of a bearer token.
type Claims struct {
	// UserID is the hex ObjectID of the user the token was issued for.
	UserID string `json:"userId"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
