package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/core/ports"
)

// SessionStore keeps one session per profile in a Redis hash.
// Key format: lifeassist:session:<profile>
type SessionStore struct {
	client  redis.Cmdable
	key     string
	timeout time.Duration
	log     zerolog.Logger
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore wraps client. An empty profile becomes "default".
func NewSessionStore(client redis.Cmdable, profile string, timeout time.Duration, log zerolog.Logger) *SessionStore {
	if profile == "" {
		profile = "default"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SessionStore{client: client, key: sessionKey(profile), timeout: timeout, log: log}
}

func sessionKey(profile string) string {
	return fmt.Sprintf("lifeassist:session:%s", profile)
}

func (s *SessionStore) Get(field string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	v, err := s.client.HGet(ctx, s.key, field).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("field", field).Msg("redis session read failed, treating as absent")
		return "", false
	}
	return v, true
}

func (s *SessionStore) Set(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	values := make(map[string]any, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	if err := s.client.HSet(ctx, s.key, values).Err(); err != nil {
		return fmt.Errorf("redis session set: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis session clear: %w", err)
	}
	return nil
}
