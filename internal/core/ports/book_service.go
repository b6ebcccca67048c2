package ports

import (
	"context"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
)

// BookInput carries the client-supplied fields of a book. Ownership is never
// part of the input: it is always derived from the authenticated identity.
type BookInput struct {
	Title         string
	Author        string
	Description   string
	Rating        int
	PublishedYear int
}

// BookService defines the owner-scoped use cases over the catalog.
type BookService interface {
	Create(ctx context.Context, identity *domain.Identity, input BookInput) (*domain.Book, error)
	ListOwned(ctx context.Context, identity *domain.Identity) ([]domain.Book, error)
	Get(ctx context.Context, identity *domain.Identity, id string) (*domain.Book, error)
	Update(ctx context.Context, identity *domain.Identity, id string, input BookInput) error

	// ListAll and Delete are admin operations. Delete additionally requires
	// the owner id the caller believes the book belongs to; a mismatch is
	// reported as not found.
	ListAll(ctx context.Context, identity *domain.Identity) ([]domain.Book, error)
	Delete(ctx context.Context, identity *domain.Identity, id, ownerID string) error
}
