package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
	"github.com/codingwithdipika/book-lending-api/internal/core/ports"
)

type stubBookRepo struct {
	books  map[string]*domain.Book
	nextID int
}

func newStubBookRepo() *stubBookRepo {
	return &stubBookRepo{books: make(map[string]*domain.Book), nextID: 1}
}

func cloneBook(b *domain.Book) *domain.Book {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookRepo) Create(_ context.Context, book *domain.Book) (*domain.Book, error) {
	copy := cloneBook(book)
	copy.ID = "book-" + strconv.Itoa(r.nextID)
	r.nextID++
	r.books[copy.ID] = cloneBook(copy)
	return copy, nil
}

func (r *stubBookRepo) FindByID(_ context.Context, id string) (*domain.Book, error) {
	if b, ok := r.books[id]; ok {
		return cloneBook(b), nil
	}
	return nil, domain.ErrBookNotFound
}

func (r *stubBookRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Book, error) {
	out := []domain.Book{}
	for _, b := range r.books {
		if ownerID == "" || b.OwnerID == ownerID {
			out = append(out, *cloneBook(b))
		}
	}
	return out, nil
}

func (r *stubBookRepo) Update(_ context.Context, book *domain.Book) error {
	if _, ok := r.books[book.ID]; !ok {
		return domain.ErrBookNotFound
	}
	r.books[book.ID] = cloneBook(book)
	return nil
}

func (r *stubBookRepo) Delete(_ context.Context, id, ownerID string) error {
	b, ok := r.books[id]
	if !ok || b.OwnerID != ownerID {
		return domain.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

var (
	alice = &domain.Identity{UserID: "user-a", Username: "alice", Role: domain.RoleUser}
	bob   = &domain.Identity{UserID: "user-b", Username: "bob", Role: domain.RoleUser}
	root  = &domain.Identity{UserID: "user-r", Username: "root", Role: domain.RoleAdmin}
)

func bookInput(title string) ports.BookInput {
	return ports.BookInput{
		Title:         title,
		Author:        "X",
		Description:   "a description",
		Rating:        5,
		PublishedYear: 2020,
	}
}

func newBookService(repo ports.BookRepository) *BookService {
	return NewBookService(repo, zerolog.Nop())
}

func TestBookService_Create_ForcesOwner(t *testing.T) {
	svc := newBookService(newStubBookRepo())

	book, err := svc.Create(context.Background(), alice, bookInput("Go Deep"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if book.OwnerID != alice.UserID {
		t.Fatalf("expected owner %s, got %s", alice.UserID, book.OwnerID)
	}
}

func TestBookService_Create_Unauthenticated(t *testing.T) {
	svc := newBookService(newStubBookRepo())
	if _, err := svc.Create(context.Background(), nil, bookInput("x")); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestBookService_ListOwned_ScopedToCaller(t *testing.T) {
	svc := newBookService(newStubBookRepo())

	created, err := svc.Create(context.Background(), alice, bookInput("Go Deep"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	own, err := svc.ListOwned(context.Background(), alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(own) != 1 || own[0].ID != created.ID {
		t.Fatalf("expected alice's book in her list, got %+v", own)
	}

	other, err := svc.ListOwned(context.Background(), bob)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty list for bob, got %+v", other)
	}
}

func TestBookService_Get_NonOwnerSeesNotFound(t *testing.T) {
	svc := newBookService(newStubBookRepo())

	created, _ := svc.Create(context.Background(), alice, bookInput("Go Deep"))

	if _, err := svc.Get(context.Background(), alice, created.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	// Another user's book reads as absent, never as forbidden.
	if _, err := svc.Get(context.Background(), bob, created.ID); err != domain.ErrBookNotFound {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookService_Update_OwnershipRecheck(t *testing.T) {
	repo := newStubBookRepo()
	svc := newBookService(repo)

	created, _ := svc.Create(context.Background(), alice, bookInput("Go Deep"))

	in := bookInput("Go Deeper")
	if err := svc.Update(context.Background(), bob, created.ID, in); err != domain.ErrBookNotFound {
		t.Fatalf("expected ErrBookNotFound for non-owner, got %v", err)
	}

	if err := svc.Update(context.Background(), alice, created.ID, in); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if repo.books[created.ID].Title != "Go Deeper" {
		t.Fatalf("update not persisted")
	}
}

func TestBookService_ListAll_AdminOnly(t *testing.T) {
	svc := newBookService(newStubBookRepo())

	_, _ = svc.Create(context.Background(), alice, bookInput("A"))
	_, _ = svc.Create(context.Background(), bob, bookInput("B"))

	all, err := svc.ListAll(context.Background(), root)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 books, got %d", len(all))
	}

	if _, err := svc.ListAll(context.Background(), alice); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	if _, err := svc.ListAll(context.Background(), nil); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestBookService_Delete_RequiresOwnerMatch(t *testing.T) {
	svc := newBookService(newStubBookRepo())

	created, _ := svc.Create(context.Background(), alice, bookInput("A"))

	if err := svc.Delete(context.Background(), alice, created.ID, alice.UserID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	// Admin with the wrong owner id still gets not found.
	if err := svc.Delete(context.Background(), root, created.ID, bob.UserID); err != domain.ErrBookNotFound {
		t.Fatalf("expected ErrBookNotFound for owner mismatch, got %v", err)
	}

	if err := svc.Delete(context.Background(), root, created.ID, alice.UserID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), alice, created.ID); err != domain.ErrBookNotFound {
		t.Fatalf("expected book gone, got %v", err)
	}
}
