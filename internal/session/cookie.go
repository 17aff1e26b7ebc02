package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CookieName is the fixed identifier of the session cookie mirror.
const CookieName = "afya_kuu_session"

// CookieWriter writes and expires the session cookie. Only the auth handlers
// hold one: the edge and guard middleware read the cookie but never write it.
type CookieWriter struct {
	secure bool
}

// NewCookieWriter builds a writer. secure should be true in production so the
// cookie is never sent over plain HTTP.
func NewCookieWriter(secure bool) *CookieWriter {
	return &CookieWriter{secure: secure}
}

// Write sets the session cookie on the response.
func (w *CookieWriter) Write(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   w.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Expire clears the session cookie. Expiring an absent cookie is a no-op.
func (w *CookieWriter) Expire(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   w.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadCookie extracts the raw session token from the request, or "" when the
// cookie is absent or empty.
func ReadCookie(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}
