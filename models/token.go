package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the access token issued by the inference service after login or
// registration.
//
// The client never verifies the signature (it does not own the key); the
// claims are decoded only to skip reusing a cached token that has already
// expired.
type Token struct {
	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, ...) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation sent as bearer.
	SignedString string `json:"-"`
}

// Expired reports whether the token carries an expiry that is not after now.
// Tokens without an "exp" claim never expire on the client side.
func (t Token) Expired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return !now.Before(t.ExpiresAt.Time)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
