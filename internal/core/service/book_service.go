package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
	"github.com/codingwithdipika/book-lending-api/internal/core/ports"
)

// BookService applies the authorization policy and builds the access
// predicate for the underlying repository.
type BookService struct {
	repo   ports.BookRepository
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, logger: logger}
}

// Create stores a new book owned by the caller. The owner is always the
// authenticated identity; a caller cannot assign ownership elsewhere.
func (s *BookService) Create(ctx context.Context, identity *domain.Identity, input ports.BookInput) (*domain.Book, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}

	now := time.Now().UTC()
	book := &domain.Book{
		Title:         input.Title,
		Author:        input.Author,
		Description:   input.Description,
		Rating:        input.Rating,
		PublishedYear: input.PublishedYear,
		OwnerID:       identity.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", identity.UserID).Msg("failed to create book")
		return nil, err
	}

	s.logger.Info().Str("book_id", created.ID).Str("owner_id", created.OwnerID).Msg("book created")
	return created, nil
}

// ListOwned returns the caller's books. Zero matches is an empty list, not an
// error.
func (s *BookService) ListOwned(ctx context.Context, identity *domain.Identity) ([]domain.Book, error) {
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByOwner(ctx, identity.UserID)
}

// Get fetches a single book. An existing book owned by someone else is
// reported as not found so non-owners cannot probe for existence.
func (s *BookService) Get(ctx context.Context, identity *domain.Identity, id string) (*domain.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := domain.Authorize(identity, domain.ActionRead, book.OwnerID); !d.Allowed {
		if d.Reason == domain.ReasonUnauthenticated {
			return nil, domain.ErrUnauthenticated
		}
		return nil, domain.ErrBookNotFound
	}
	return book, nil
}

// Update replaces the mutable fields of a book the caller owns. Ownership
// mismatches are reported as not found, same as Get.
func (s *BookService) Update(ctx context.Context, identity *domain.Identity, id string, input ports.BookInput) error {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if d := domain.Authorize(identity, domain.ActionWrite, book.OwnerID); !d.Allowed {
		if d.Reason == domain.ReasonUnauthenticated {
			return domain.ErrUnauthenticated
		}
		return domain.ErrBookNotFound
	}

	book.Title = input.Title
	book.Author = input.Author
	book.Description = input.Description
	book.Rating = input.Rating
	book.PublishedYear = input.PublishedYear
	book.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, book)
}

// ListAll returns every book regardless of owner. Admin only.
func (s *BookService) ListAll(ctx context.Context, identity *domain.Identity) ([]domain.Book, error) {
	if d := domain.Authorize(identity, domain.ActionAdminList, ""); !d.Allowed {
		if d.Reason == domain.ReasonUnauthenticated {
			return nil, domain.ErrUnauthenticated
		}
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByOwner(ctx, "")
}

// Delete removes a book by id. Admin only, and the caller must also supply
// the owner id the book belongs to: the repository deletes on the combined
// match, so a wrong owner id yields not found.
func (s *BookService) Delete(ctx context.Context, identity *domain.Identity, id, ownerID string) error {
	if d := domain.Authorize(identity, domain.ActionAdminDelete, ""); !d.Allowed {
		if d.Reason == domain.ReasonUnauthenticated {
			return domain.ErrUnauthenticated
		}
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info().Str("book_id", id).Str("owner_id", ownerID).Str("admin", identity.Username).Msg("book deleted")
	return nil
}
