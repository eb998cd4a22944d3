package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidIDToken is returned when an ID token cannot be decoded or lacks a
// user identifier.
var ErrInvalidIDToken = errors.New("invalid id token")

// IDTokenClaims are the claims the client reads from an identity provider ID
// token. The identity provider puts the account id in `user_id` and mirrors
// it in `sub`.
type IDTokenClaims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// UID returns the account identifier, preferring `user_id` over `sub`.
func (c IDTokenClaims) UID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// ParseIDTokenClaims decodes the claims of tokenString without verifying its
// signature. The token is only ever received directly from the identity
// provider over TLS and is verified by the vault backend, so the client
// reads it for the uid and the expiry only.
//
// Returns [ErrInvalidIDToken] if the token is malformed or carries no uid.
func ParseIDTokenClaims(tokenString string) (IDTokenClaims, error) {
	var claims IDTokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return IDTokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}

	if claims.UID() == "" {
		return IDTokenClaims{}, fmt.Errorf("%w: empty subject", ErrInvalidIDToken)
	}

	return claims, nil
}
