// Package session tracks live access tokens in Redis so a login can be
// revoked ahead of its JWT expiry. One key per access ID (jti); the value is
// the owning user's ID.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/google/uuid"

	"github.com/Saksham10-11/GSD/pkg/redis"
)

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	AccessSessionKey(accessID string) string
}

// Manager issues and revokes server-side sessions keyed by access ID.
type Manager struct {
	store sessionStore
	ttl   time.Duration
}

func NewManager(store *redis.Client, ttl time.Duration) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session manager requires a redis client")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session manager requires a positive ttl")
	}
	return &Manager{store: store, ttl: ttl}, nil
}

// NewAccessID returns a fresh access ID for use as a JWT jti.
func NewAccessID() string {
	return uuid.NewString()
}

// Generate registers a session for the access ID. The TTL bounds how long a
// refresh against this session stays possible.
func (m *Manager) Generate(ctx context.Context, accessID string, userID uuid.UUID) error {
	if accessID == "" || userID == uuid.Nil {
		return fmt.Errorf("session requires an access ID and user ID")
	}
	key := m.store.AccessSessionKey(accessID)
	if err := m.store.Set(ctx, key, userID.String(), m.ttl); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// Rotate atomically replaces one session with another, as happens on token
// refresh. The old session is removed even if it had already expired.
func (m *Manager) Rotate(ctx context.Context, oldAccessID, newAccessID string, userID uuid.UUID) error {
	if err := m.Generate(ctx, newAccessID, userID); err != nil {
		return err
	}
	return m.Revoke(ctx, oldAccessID)
}

// Revoke removes the session. Revoking an unknown session is not an error.
func (m *Manager) Revoke(ctx context.Context, accessID string) error {
	if accessID == "" {
		return nil
	}
	if err := m.store.Del(ctx, m.store.AccessSessionKey(accessID)); err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}

// HasSession reports whether the access ID maps to a live session owned by
// the user.
func (m *Manager) HasSession(ctx context.Context, accessID string, userID uuid.UUID) (bool, error) {
	if accessID == "" {
		return false, nil
	}
	owner, err := m.store.Get(ctx, m.store.AccessSessionKey(accessID))
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading session: %w", err)
	}
	return owner == userID.String(), nil
}
