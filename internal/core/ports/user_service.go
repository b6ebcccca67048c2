package ports

import (
	"context"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
)

// UserService covers the self-service account operations.
type UserService interface {
	Profile(ctx context.Context, identity *domain.Identity) (*domain.User, error)
	// ChangePassword verifies currentPassword before storing a hash of
	// newPassword.
	ChangePassword(ctx context.Context, identity *domain.Identity, currentPassword, newPassword string) error
}
