package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/api/metrics"
	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/session"
)

// Protected prefixes are matched first; every other path is public at the
// edge, so "/" cannot shadow "/dashboard".
var protectedPrefixes = []string{"/dashboard"}

func isProtected(path string) bool {
	for _, p := range protectedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Edge is the request-time interceptor: a stateless, coarse authorization
// decision made from the cookie mirror alone, before any page handler runs.
// It never writes the cookie and holds no memory between requests. The guard
// middleware behind it remains the source of truth for what actually renders.
func Edge(codec *session.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if !isProtected(path) {
				// public routes and static assets pass through unmodified
				return next(c)
			}

			token := session.ReadCookie(c)
			if token == "" {
				return redirectToEntry(c, path, "", ReasonLoginRequired)
			}

			identity, err := codec.Decode(token)
			if err != nil {
				// present but unparsable: purged by redirecting with the
				// invalid-session pair, never by crashing navigation
				return redirectToEntry(c, path, ReasonInvalidSession, ReasonSessionExpired)
			}

			// Role mismatch on a role-specific path is "wrong door, let me
			// show you the right one": redirect to the caller's own dashboard.
			// Decode only admits roles from the closed set, so the identity
			// here always owns a dashboard.
			if required, ok := requiredRoleFor(path); ok && identity.Role != required {
				metrics.AuthRedirectsTotal.WithLabelValues(ReasonAccessDenied).Inc()
				return c.Redirect(http.StatusFound, identity.Role.DashboardPath())
			}

			return next(c)
		}
	}
}

// requiredRoleFor reports which role a role-specific dashboard path demands.
func requiredRoleFor(path string) (domain.Role, bool) {
	switch {
	case strings.HasPrefix(path, "/dashboard/doctor"):
		return domain.RoleDoctor, true
	case strings.HasPrefix(path, "/dashboard/admin"):
		return domain.RoleAdmin, true
	default:
		return "", false
	}
}

// redirectToEntry sends the client to the entry page carrying the original
// destination and the reason code pair.
func redirectToEntry(c echo.Context, redirect, errCode, message string) error {
	q := url.Values{}
	if redirect != "" {
		q.Set("redirect", redirect)
	}
	if errCode != "" {
		q.Set("error", errCode)
	}
	q.Set("message", message)

	metrics.AuthRedirectsTotal.WithLabelValues(message).Inc()
	return c.Redirect(http.StatusFound, EntryPath+"?"+q.Encode())
}
