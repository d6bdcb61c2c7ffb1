package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mfetisov/storefront/internal/domain"
)

// slotTTL bounds how long a snapshot outlives its session. Long enough for a
// reload of the confirmation page, short enough not to hoard stale orders.
const slotTTL = 24 * time.Hour

// RedisStore keeps the snapshot in redis so the confirmation screen survives
// a full process restart. The key is fixed per session scope.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// NewRedisStore scopes the last-order slot to one session. scope is typically
// the bound user id.
func NewRedisStore(rdb *redis.Client, scope string) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		key: "storefront:receipt:" + scope,
	}
}

func (s *RedisStore) Put(ctx context.Context, r *domain.Receipt) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal receipt: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, payload, slotTTL).Err(); err != nil {
		return fmt.Errorf("store receipt: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context) (*domain.Receipt, error) {
	payload, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoReceipt
	}
	if err != nil {
		return nil, fmt.Errorf("load receipt: %w", err)
	}
	var r domain.Receipt
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("decode receipt: %w", err)
	}
	return &r, nil
}
