package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/session"
)

type stubSessionStore struct {
	sessions map[string]*domain.Identity
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Identity)}
}

func (s *stubSessionStore) Save(_ context.Context, identity *domain.Identity, _ time.Duration) error {
	s.sessions[identity.ID] = identity
	return nil
}

func (s *stubSessionStore) Load(_ context.Context, identityID string) (*domain.Identity, error) {
	identity, ok := s.sessions[identityID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return identity, nil
}

func (s *stubSessionStore) Clear(_ context.Context, identityID string) error {
	delete(s.sessions, identityID)
	return nil
}

func guardRequest(t *testing.T, g *Guard, mw echo.MiddlewareFunc, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "handler ran")
	}
	if err := mw(next)(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return rec
}

func liveDoctor(t *testing.T, codec *session.TokenCodec, store *stubSessionStore) (string, *domain.Identity) {
	t.Helper()
	identity := &domain.Identity{ID: "cred_1", Email: "doc@clinic.co.ke", Role: domain.RoleDoctor}
	if err := store.Save(context.Background(), identity, session.TTL); err != nil {
		t.Fatalf("store save failed: %v", err)
	}
	token, err := codec.Encode(identity)
	if err != nil {
		t.Fatalf("token encode failed: %v", err)
	}
	return token, identity
}

func TestGuard_RequireSession_AllowsLiveSession(t *testing.T) {
	codec := session.NewTokenCodec("secret", time.Hour)
	store := newStubSessionStore()
	token, _ := liveDoctor(t, codec, store)
	g := NewGuard(codec, store)

	rec := guardRequest(t, g, g.RequireSession(true), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_RequireSession_RejectsClearedStore(t *testing.T) {
	// A logout clears the store; the still-unexpired cookie must be rejected.
	codec := session.NewTokenCodec("secret", time.Hour)
	store := newStubSessionStore()
	token, identity := liveDoctor(t, codec, store)
	g := NewGuard(codec, store)

	if err := store.Clear(context.Background(), identity.ID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	rec := guardRequest(t, g, g.RequireSession(true), token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after store cleared, got %d", rec.Code)
	}

	var body struct {
		Error  string `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body.Reason != ReasonSessionExpired {
		t.Fatalf("expected reason %s, got %q", ReasonSessionExpired, body.Reason)
	}
}

func TestGuard_RequireSession_RedirectModeWithoutCookie(t *testing.T) {
	codec := session.NewTokenCodec("secret", time.Hour)
	g := NewGuard(codec, newStubSessionStore())

	rec := guardRequest(t, g, g.RequireSession(false), "")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect for page route, got %d", rec.Code)
	}
	loc, _ := url.Parse(rec.Header().Get(echo.HeaderLocation))
	if loc.Path != EntryPath || loc.Query().Get("message") != ReasonLoginRequired {
		t.Fatalf("unexpected redirect target: %s", rec.Header().Get(echo.HeaderLocation))
	}
}

func TestGuard_RequireSession_InjectsStoredIdentity(t *testing.T) {
	codec := session.NewTokenCodec("secret", time.Hour)
	store := newStubSessionStore()
	token, identity := liveDoctor(t, codec, store)
	g := NewGuard(codec, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.Identity
	next := func(c echo.Context) error {
		seen, _ = c.Get(ContextIdentityKey).(*domain.Identity)
		return c.NoContent(http.StatusOK)
	}
	if err := g.RequireSession(true)(next)(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	if seen == nil || seen.ID != identity.ID {
		t.Fatalf("expected stored identity in context, got %+v", seen)
	}
}

func TestGuard_RequireRole_BlockedBody(t *testing.T) {
	codec := session.NewTokenCodec("secret", time.Hour)
	store := newStubSessionStore()
	token, _ := liveDoctor(t, codec, store)
	g := NewGuard(codec, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	chain := g.RequireSession(true)(g.RequireRole(domain.RoleAdmin, true)(next))
	if err := chain(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var body struct {
		Error  string `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body.Error != ReasonAccessDenied || body.Reason != ReasonAdminAccessRequired {
		t.Fatalf("unexpected blocked body: %+v", body)
	}
}

func TestGuard_RequireRole_RedirectsToOwnDashboard(t *testing.T) {
	codec := session.NewTokenCodec("secret", time.Hour)
	store := newStubSessionStore()
	token, _ := liveDoctor(t, codec, store)
	g := NewGuard(codec, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	chain := g.RequireSession(false)(g.RequireRole(domain.RoleAdmin, false)(next))
	if err := chain(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/dashboard/doctor" {
		t.Fatalf("expected redirect to own dashboard, got %q", loc)
	}
}

func TestGuard_RequireRole_AllowsMatchingRole(t *testing.T) {
	codec := session.NewTokenCodec("secret", time.Hour)
	store := newStubSessionStore()
	token, _ := liveDoctor(t, codec, store)
	g := NewGuard(codec, store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.String(http.StatusOK, "handler ran") }
	chain := g.RequireSession(true)(g.RequireRole(domain.RoleDoctor, true)(next))
	if err := chain(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "handler ran" {
		t.Fatalf("expected handler to run, got %d %q", rec.Code, rec.Body.String())
	}
}
