package ports

import (
	"context"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Username  string
	Email     string
	Firstname string
	Lastname  string
	Password  string
	Role      string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
