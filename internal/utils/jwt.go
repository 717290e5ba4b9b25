package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by [ParseUnverifiedToken] for a blank input.
var ErrEmptyToken = errors.New("empty token")

// ParseUnverifiedToken decodes the claims of a compact JWT without checking
// its signature. The client does not own the signing key; the claims are
// only used to avoid sending an already expired cached token.
//
// The returned [models.Token] carries tokenString as its SignedString.
//
// Example usage:
//
//	token, err := utils.ParseUnverifiedToken(raw)
//	if err == nil && token.Expired(time.Now()) {
//	    // drop the cached token
//	}
func ParseUnverifiedToken(tokenString string) (models.Token, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return models.Token{}, ErrEmptyToken
	}

	var token models.Token
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &token); err != nil {
		return models.Token{}, fmt.Errorf("error occurred parsing token: %w", err)
	}

	token.SignedString = tokenString
	return token, nil
}
