package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
)

// TokenManager issues and verifies signed bearer tokens. Both sides of the
// round trip use the same process-wide secret and HS256; a token carries the
// subject username, user id, role, and an absolute expiry.
type TokenManager struct {
	secret string
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 20 * time.Minute
	}
	return &TokenManager{secret: secret, ttl: ttl}
}

// Issue mints a token for already-verified credentials. Credential
// verification is the caller's responsibility; Issue has no side effects.
func (m *TokenManager) Issue(username, userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     username,
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(m.secret))
}

// Verify checks signature and expiry and returns the embedded identity.
// It never touches the store: claims are trusted as signed.
func (m *TokenManager) Verify(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(m.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	username, _ := claims["sub"].(string)
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if username == "" || userID == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Identity{UserID: userID, Username: username, Role: role}, nil
}
