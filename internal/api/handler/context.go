package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/api/middleware"
	"github.com/afyakuu/platform-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the guard middleware and
// performs a fast-fail check before any service call: its presence proves
// the guard ran, and the role must belong to the closed set.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := c.Get(middleware.ContextIdentityKey).(*domain.Identity)
	if !ok || identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if !identity.Role.Valid() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "session carries unknown role")
	}
	return identity, nil
}
