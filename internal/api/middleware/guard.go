package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
	"github.com/afyakuu/platform-api/internal/session"
)

// ContextIdentityKey is where the guard stores the verified identity.
const ContextIdentityKey = "identity"

// Guard is the finer, second check behind the edge pass. Unlike the edge
// middleware it consults the durable session store, which is the source of
// truth: a logout clears the store, so a still-unexpired cookie is rejected
// on the very next request.
type Guard struct {
	codec *session.TokenCodec
	store ports.SessionStore
}

func NewGuard(codec *session.TokenCodec, store ports.SessionStore) *Guard {
	return &Guard{codec: codec, store: store}
}

type blockedResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// RequireSession verifies the cookie token against the live store and
// injects the stored identity into the request context.
//
// showBlocked controls the failure shape: true renders a blocked-access body
// in place (API routes); false redirects to the entry page (page routes).
func (g *Guard) RequireSession(showBlocked bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := session.ReadCookie(c)
			if token == "" {
				return g.unauthenticated(c, showBlocked, ReasonLoginRequired)
			}

			identity, err := g.codec.Decode(token)
			if err != nil {
				return g.unauthenticated(c, showBlocked, ReasonSessionExpired)
			}

			// The store decides whether the session is still live.
			stored, err := g.store.Load(c.Request().Context(), identity.ID)
			if err != nil {
				if err == domain.ErrSessionNotFound {
					return g.unauthenticated(c, showBlocked, ReasonSessionExpired)
				}
				return err
			}

			c.Set(ContextIdentityKey, stored)
			return next(c)
		}
	}
}

// RequireRole gates a subtree behind a role, evaluated against the live
// identity set by RequireSession. Wrong role with showBlocked renders the
// blocked-access body; without it, the caller is redirected to their own
// dashboard.
func (g *Guard) RequireRole(required domain.Role, showBlocked bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(ContextIdentityKey).(*domain.Identity)
			if !ok {
				return g.unauthenticated(c, showBlocked, ReasonLoginRequired)
			}

			if identity.Role != required {
				if showBlocked {
					reason := ReasonDoctorAccessRequired
					if required == domain.RoleAdmin {
						reason = ReasonAdminAccessRequired
					}
					return c.JSON(http.StatusForbidden, blockedResponse{
						Error:  ReasonAccessDenied,
						Reason: reason,
					})
				}
				return c.Redirect(http.StatusFound, identity.Role.DashboardPath())
			}

			return next(c)
		}
	}
}

func (g *Guard) unauthenticated(c echo.Context, showBlocked bool, reason string) error {
	if showBlocked {
		return c.JSON(http.StatusUnauthorized, blockedResponse{
			Error:  ReasonLoginRequired,
			Reason: reason,
		})
	}
	return redirectToEntry(c, c.Request().URL.Path, "", reason)
}
