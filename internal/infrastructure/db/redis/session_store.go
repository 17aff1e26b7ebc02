package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/afyakuu/platform-api/internal/core/domain"
)

// SessionCommands is the slice of the Redis API the session store uses.
// *redis.Client satisfies it.
type SessionCommands interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionStore is the durable session mirror, keyed by identity ID.
// Key format: session:<identity_id>
type SessionStore struct {
	client SessionCommands
	log    zerolog.Logger
}

// NewSessionStore wraps the given Redis client.
func NewSessionStore(client SessionCommands, log zerolog.Logger) *SessionStore {
	return &SessionStore{client: client, log: log}
}

func (s *SessionStore) key(identityID string) string {
	return "session:" + identityID
}

// Save serializes the identity and stores it with the session TTL.
func (s *SessionStore) Save(ctx context.Context, identity *domain.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(identity.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load reconstructs the identity for the given ID. An absent key yields
// domain.ErrSessionNotFound. A malformed value is purged and reported as
// "no session" rather than raised: session corruption is recoverable.
func (s *SessionStore) Load(ctx context.Context, identityID string) (*domain.Identity, error) {
	raw, err := s.client.Get(ctx, s.key(identityID)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil || !identity.Role.Valid() {
		s.log.Warn().Str("identity_id", identityID).Msg("purging malformed session entry")
		_ = s.client.Del(ctx, s.key(identityID)).Err()
		return nil, domain.ErrSessionNotFound
	}
	return &identity, nil
}

// Clear removes the session. Clearing an absent session is a no-op.
func (s *SessionStore) Clear(ctx context.Context, identityID string) error {
	if err := s.client.Del(ctx, s.key(identityID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
