package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kavishzap/native-wallet/internal/platform/session"
	"github.com/kavishzap/native-wallet/pkg/logger"
)

// KeyPrefix is the prefix for session keys
const KeyPrefix = "session:"

// SessionStore is a Redis-backed session.Store. Sessions are JSON values
// keyed by an opaque token; a zero TTL keeps them until Clear.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewSessionStore creates a new session store. ttl of zero means sessions
// never expire.
func NewSessionStore(client *redis.Client, ttl time.Duration, log *logger.Logger) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		logger: log.WithField("component", "session_store"),
	}
}

// Establish persists the session and returns its token
func (s *SessionStore) Establish(ctx context.Context, sess session.Session) (string, error) {
	token := uuid.NewString()

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, KeyPrefix+token, data, s.ttl).Err(); err != nil {
		s.logger.Error("session store error", "operation", "establish", "error", err)
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Current returns the session for a token, or session.ErrNotFound
func (s *SessionStore) Current(ctx context.Context, token string) (*session.Session, error) {
	val, err := s.client.Get(ctx, KeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		s.logger.Error("session store error", "operation", "current", "error", err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// Clear removes the session for a token
func (s *SessionStore) Clear(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, KeyPrefix+token).Err(); err != nil {
		s.logger.Error("session store error", "operation", "clear", "error", err)
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
