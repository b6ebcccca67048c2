package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
)

func TestUserService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, NewTokenManager("secret", time.Hour), nil)
	svc := NewUserService(repo)

	created, err := auth.Register(context.Background(), registerInput("alice"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	identity := &domain.Identity{UserID: created.ID, Username: "alice", Role: domain.RoleUser}
	user, err := svc.Profile(context.Background(), identity)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if user.Username != "alice" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), nil); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, NewTokenManager("secret", time.Hour), nil)
	svc := NewUserService(repo)

	created, err := auth.Register(context.Background(), registerInput("bob"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	identity := &domain.Identity{UserID: created.ID, Username: "bob", Role: domain.RoleUser}

	if err := svc.ChangePassword(context.Background(), identity, "s3cret", "newpass1"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	stored := repo.users[created.ID].PasswordHash
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte("newpass1")) != nil {
		t.Fatalf("new password not persisted")
	}
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, NewTokenManager("secret", time.Hour), nil)
	svc := NewUserService(repo)

	created, err := auth.Register(context.Background(), registerInput("carol"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	identity := &domain.Identity{UserID: created.ID, Username: "carol", Role: domain.RoleUser}

	if err := svc.ChangePassword(context.Background(), identity, "wrong", "newpass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	stored := repo.users[created.ID].PasswordHash
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte("s3cret")) != nil {
		t.Fatalf("original password should be untouched")
	}
}
