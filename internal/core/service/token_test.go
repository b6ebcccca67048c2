package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, err := tm.Issue("alice", "user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.Username != "alice" || id.UserID != "user-1" || id.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	// Sign an already-expired token with the correct key.
	claims := jwt.MapClaims{
		"sub":     "alice",
		"user_id": "user-1",
		"role":    domain.RoleUser,
		"exp":     time.Now().Add(-time.Second).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Verify(expired); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_WrongKey(t *testing.T) {
	issuer := NewTokenManager("key-a", time.Hour)
	verifier := NewTokenManager("key-b", time.Hour)

	token, err := issuer.Issue("alice", "user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	if _, err := tm.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_MissingExpiry(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	claims := jwt.MapClaims{
		"sub":     "alice",
		"user_id": "user-1",
		"role":    domain.RoleUser,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for token without expiry, got %v", err)
	}
}

func TestTokenManager_UnknownRole(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	claims := jwt.MapClaims{
		"sub":     "alice",
		"user_id": "user-1",
		"role":    "superuser",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for unknown role, got %v", err)
	}
}
