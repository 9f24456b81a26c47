package convstate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists contexts in Redis with a per-key TTL, so expiry needs
// no application-side reaping and state survives process restarts.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if client == nil {
		panic("convstate: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func contextKey(phone string) string {
	return fmt.Sprintf("convstate:%s", phone)
}

// Get loads the user's context. Redis handles expiry; a missing key means
// no live context.
func (s *RedisStore) Get(ctx context.Context, phone string) (*Context, error) {
	data, err := s.client.Get(ctx, contextKey(phone)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to load context: %v", ErrStoreUnavailable, err)
	}

	var state Context
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt blob is unrecoverable; drop it so the user starts clean.
		_ = s.client.Del(ctx, contextKey(phone)).Err()
		return nil, nil
	}
	return &state, nil
}

// Set stores the context and refreshes its TTL.
func (s *RedisStore) Set(ctx context.Context, state *Context) error {
	now := time.Now()
	cp := *state
	cp.UpdatedAt = now
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}

	data, err := json.Marshal(&cp)
	if err != nil {
		return fmt.Errorf("convstate: failed to marshal context: %w", err)
	}
	if err := s.client.Set(ctx, contextKey(cp.Phone), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: failed to persist context: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Clear removes the user's context.
func (s *RedisStore) Clear(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, contextKey(phone)).Err(); err != nil {
		return fmt.Errorf("%w: failed to clear context: %v", ErrStoreUnavailable, err)
	}
	return nil
}
