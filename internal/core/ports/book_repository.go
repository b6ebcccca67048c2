package ports

import (
	"context"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
)

// BookRepository defines the interface for book persistence.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	// FindByOwner returns all books owned by ownerID. An empty ownerID
	// means no filter and returns every book.
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	// Delete removes the book only when both id and ownerID match.
	Delete(ctx context.Context, id, ownerID string) error
}
