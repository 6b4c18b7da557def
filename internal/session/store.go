// Package session persists the access/refresh token pair for the current
// request, backed by httpOnly cookies in production and by memory in tests.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store owns the session's token pair. Tokens are mutated only by the
// refresh protocol and the login/logout handlers; after any refresh
// attempt either both tokens are present or both are cleared.
type Store interface {
	AccessToken() string
	RefreshToken() string
	SetTokens(accessToken, refreshToken string) error
	Clear() error
}

// PeekExpiry reads the exp claim of a JWT without verifying its signature.
// The gateway never validates backend tokens (it has no key); it only
// checks whether attaching one would be pointless because it has expired.
// Returns a zero time when the token carries no usable exp claim.
func PeekExpiry(token string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Expired reports whether the token has a parsable exp claim in the past.
// Opaque (non-JWT) tokens are never considered expired here; the backend
// remains the authority.
func Expired(token string, now time.Time) bool {
	exp := PeekExpiry(token)
	return !exp.IsZero() && exp.Before(now)
}
