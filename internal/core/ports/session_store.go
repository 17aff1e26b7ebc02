package ports

import (
	"context"
	"time"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// SessionStore is the durable source of truth for live sessions. The cookie
// is only a mirror of it: the guard middleware consults the store so that a
// logout invalidates a still-unexpired cookie.
//
// Load treats an absent or malformed entry as "no session"
// (domain.ErrSessionNotFound); malformed entries are purged, never raised.
// Clear is idempotent.
type SessionStore interface {
	Save(ctx context.Context, identity *domain.Identity, ttl time.Duration) error
	Load(ctx context.Context, identityID string) (*domain.Identity, error)
	Clear(ctx context.Context, identityID string) error
}
