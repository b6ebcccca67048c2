package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codingwithdipika/book-lending-api/internal/core/ports"
)

// AdminHandler handles the admin-only catalog endpoints. Routes are mounted
// behind the RBAC middleware, so by the time these run the caller holds a
// valid admin token; the service layer still re-checks.
type AdminHandler struct {
	service ports.BookService
}

func NewAdminHandler(service ports.BookService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListAll handles GET /admin/todo — every book regardless of owner.
//
// @Summary      List all books (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Book
// @Failure      401  {object}  map[string]string
// @Router       /admin/todo [get]
func (h *AdminHandler) ListAll(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	books, err := h.service.ListAll(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// Delete handles DELETE /admin/books/:id. The caller must supply the book's
// owner id as a query parameter; the delete only happens when both match.
//
// @Summary      Delete a book (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id        path   string  true  "Book id"
// @Param        owner_id  query  string  true  "Owner id the book belongs to"
// @Success      204  "No Content"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/books/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, c.Param("id"), c.QueryParam("owner_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
