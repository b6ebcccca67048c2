package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
)

var adminIdentity = &domain.Identity{UserID: "user-r", Username: "root", Role: domain.RoleAdmin}

func TestAdminHandler_ListAll(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookService{
		listAllFn: func(ctx context.Context, identity *domain.Identity) ([]domain.Book, error) {
			return []domain.Book{
				{ID: "book-1", OwnerID: "user-a"},
				{ID: "book-2", OwnerID: "user-b"},
			}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := authedContext(e, http.MethodGet, "/admin/todo", "", adminIdentity)

	if err := h.ListAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []domain.Book
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 books, got %d", len(resp))
	}
}

func TestAdminHandler_Delete_PassesOwnerID(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookService{
		deleteFn: func(ctx context.Context, identity *domain.Identity, id, ownerID string) error {
			if id != "book-1" || ownerID != "user-a" {
				t.Fatalf("unexpected args: %s %s", id, ownerID)
			}
			return nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := authedContext(e, http.MethodDelete, "/admin/books/book-1?owner_id=user-a", "", adminIdentity)
	c.SetParamNames("id")
	c.SetParamValues("book-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAdminHandler_Delete_OwnerMismatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookService{
		deleteFn: func(ctx context.Context, identity *domain.Identity, id, ownerID string) error {
			return domain.ErrBookNotFound
		},
	}
	h := NewAdminHandler(stub)

	c, _ := authedContext(e, http.MethodDelete, "/admin/books/book-1?owner_id=user-z", "", adminIdentity)
	c.SetParamNames("id")
	c.SetParamValues("book-1")

	err := h.Delete(c)
	if !errors.Is(err, domain.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}
