package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-only-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseUnverifiedToken_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	token, err := ParseUnverifiedToken(raw)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString != raw {
		t.Error("expected SignedString to hold the raw token")
	}
	if token.Subject != "user@example.com" {
		t.Errorf("expected subject user@example.com, got %s", token.Subject)
	}
	if token.ExpiresAt == nil || !token.ExpiresAt.Time.Equal(exp) {
		t.Errorf("expected exp %v, got %v", exp, token.ExpiresAt)
	}
	if token.Expired(time.Now()) {
		t.Error("expected token not to be expired")
	}
}

func TestParseUnverifiedToken_Expired(t *testing.T) {
	raw := signTestToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	token, err := ParseUnverifiedToken(raw)

	// unverified parsing does not validate exp
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !token.Expired(time.Now()) {
		t.Error("expected token to be expired")
	}
}

func TestParseUnverifiedToken_NoExpiry(t *testing.T) {
	raw := signTestToken(t, jwt.MapClaims{"sub": "x"})

	token, err := ParseUnverifiedToken(raw)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.Expired(time.Now()) {
		t.Error("expected token without exp to never expire")
	}
}

func TestParseUnverifiedToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"garbage", "not-a-jwt"},
		{"two segments", "abc.def"},
		{"bad base64", "!!!.@@@.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseUnverifiedToken(tt.input); err == nil {
				t.Error("expected error for malformed token, got nil")
			}
		})
	}
}

func TestParseUnverifiedToken_Empty(t *testing.T) {
	_, err := ParseUnverifiedToken("   ")

	if !errors.Is(err, ErrEmptyToken) {
		t.Errorf("expected ErrEmptyToken, got %v", err)
	}
}
