package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// pending marks a key whose first request is still running.
const pending = "processing"

// IdempotencyStore remembers responses of mutating requests by client key.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "ohadacore:idempotency:",
	}
}

// Claim reserves key for a new request. When the key is already known it
// returns claimed=false and the stored response, nil while the first request
// is still in flight.
func (s *IdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (claimed bool, response []byte, err error) {
	fullKey := s.prefix + key

	set, err := s.client.SetNX(ctx, fullKey, pending, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if set {
		return true, nil, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		// Expired between the two calls.
		return s.Claim(ctx, key, ttl)
	}
	if err != nil {
		return false, nil, err
	}
	if string(existing) == pending {
		return false, nil, nil
	}
	return false, existing, nil
}

// Complete stores the final response of a claimed key.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}

// Release forgets a claimed key so the request can be retried.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
