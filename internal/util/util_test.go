package util

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signHS256(t *testing.T, claims *Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestValidateJWT(t *testing.T) {
	signed := signHS256(t, &Claims{
		Email: "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	claims, err := ValidateJWT(signed, testSecret)
	if err != nil {
		t.Fatalf("ValidateJWT returned error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("subject = %q, want user-123", claims.Subject)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("email = %q, want user@example.com", claims.Email)
	}
}

func TestValidateJWTWrongSecret(t *testing.T) {
	signed := signHS256(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, "other-secret")

	if _, err := ValidateJWT(signed, testSecret); err == nil {
		t.Fatal("expected validation failure for wrong secret")
	}
}

func TestValidateJWTExpired(t *testing.T) {
	signed := signHS256(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}, testSecret)

	if _, err := ValidateJWT(signed, testSecret); err == nil {
		t.Fatal("expected validation failure for expired token")
	}
}

func TestValidateJWTMalformed(t *testing.T) {
	if _, err := ValidateJWT("not-a-token", testSecret); err == nil {
		t.Fatal("expected validation failure for malformed token")
	}
	if _, err := ValidateJWT("not-a-token", testSecret); err != nil && !strings.Contains(err.Error(), "failed to detect algorithm") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRSAPublicKeyRejectsGarbage(t *testing.T) {
	if _, err := ParseRSAPublicKey("not a pem block"); err == nil {
		t.Fatal("expected error for non-PEM input")
	}
}
