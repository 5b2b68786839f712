// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/worldofalafia/marketplace-api/internal/platform/constants"
	"github.com/worldofalafia/marketplace-api/internal/platform/ctxutil"
)

// snapshotTTL bounds how long an untouched cart survives. Every Save
// refreshes it, so only abandoned carts expire.
const snapshotTTL = 90 * 24 * time.Hour

// RedisSnapshotStore implements [SnapshotStore] on a single Redis key per owner.
type RedisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore creates a new Redis-backed [SnapshotStore].
func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

/*
Load reads the whole cart snapshot for an owner.

Description: An absent key yields an empty cart. A corrupt snapshot also
yields an empty cart — the corruption is logged and the broken document is
left in place to be overwritten by the next Save.

Parameters:
  - ctx: context.Context
  - ownerID: string

Returns:
  - *Cart: Never nil
  - error: Connectivity errors only
*/
func (store *RedisSnapshotStore) Load(ctx context.Context, ownerID string) (*Cart, error) {
	key := constants.RedisPrefixCartSnapshot + ownerID

	data, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Cart{}, nil
		}
		return nil, fmt.Errorf("redis_cart_snapshot_load_failed: %w", err)
	}

	loaded, ok := DecodeSnapshot(data)
	if !ok {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "cart_snapshot_corrupt",
			slog.String("owner_id", ownerID),
			slog.Int("bytes", len(data)),
		)
	}

	return loaded, nil
}

/*
Save replaces the stored snapshot with the current line collection.

Parameters:
  - ctx: context.Context
  - ownerID: string
  - cart: *Cart

Returns:
  - error: Serialization or connectivity errors
*/
func (store *RedisSnapshotStore) Save(ctx context.Context, ownerID string, cart *Cart) error {
	key := constants.RedisPrefixCartSnapshot + ownerID

	data, err := EncodeSnapshot(cart)
	if err != nil {
		return fmt.Errorf("redis_cart_snapshot_encode_failed: %w", err)
	}

	if err := store.client.Set(ctx, key, data, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("redis_cart_snapshot_save_failed: %w", err)
	}

	return nil
}
