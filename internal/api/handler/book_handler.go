package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codingwithdipika/book-lending-api/internal/api/metrics"
	"github.com/codingwithdipika/book-lending-api/internal/core/ports"
)

// BookHandler handles the owner-scoped book endpoints.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

type bookRequest struct {
	Title         string `json:"title" validate:"required,min=3"`
	Author        string `json:"author" validate:"required,min=1"`
	Description   string `json:"description" validate:"required,min=1,max=100"`
	Rating        int    `json:"rating" validate:"required,gt=0,lt=6"`
	PublishedYear int    `json:"published_year" validate:"required,gt=1999,lt=2090"`
	// OwnerID is accepted in the payload but deliberately ignored: ownership
	// always comes from the authenticated identity.
	OwnerID string `json:"owner_id,omitempty"`
}

func (r bookRequest) toInput() ports.BookInput {
	return ports.BookInput{
		Title:         r.Title,
		Author:        r.Author,
		Description:   r.Description,
		Rating:        r.Rating,
		PublishedYear: r.PublishedYear,
	}
}

// List handles GET /books — the caller's own books.
//
// @Summary      List own books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Book
// @Failure      401  {object}  map[string]string
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	books, err := h.service.ListOwned(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// Get handles GET /books/:id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  domain.Book
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	book, err := h.service.Get(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Create handles POST /books/create-book.
//
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookRequest  true  "Book details"
// @Success      201   {object}  domain.Book
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /books/create-book [post]
func (h *BookHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	book, err := h.service.Create(c.Request().Context(), identity, req.toInput())
	if err != nil {
		return err
	}

	metrics.BooksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, book)
}

// Update handles PUT /books/update_book/:id.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      string       true  "Book id"
// @Param        body  body      bookRequest  true  "Book details"
// @Success      204   "No Content"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /books/update_book/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	if err := h.service.Update(c.Request().Context(), identity, c.Param("id"), req.toInput()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
