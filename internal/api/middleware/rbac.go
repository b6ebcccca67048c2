package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codingwithdipika/book-lending-api/internal/api/metrics"
)

// RBAC enforces role-based access control on a route group. Denials are
// reported as 401 rather than 403 so role-gated surfaces look identical to
// unauthenticated ones.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := Identity(c)
			if identity == nil {
				metrics.AuthDenialsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[identity.Role]; !ok {
				metrics.AuthDenialsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
			}
			return next(c)
		}
	}
}
