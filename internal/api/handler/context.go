package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codingwithdipika/book-lending-api/internal/api/middleware"
	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing identity means the
// middleware did not run or the token carried no usable claims.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity := middleware.Identity(c)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
