// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
	"github.com/worldofalafia/marketplace-api/internal/platform/constants"
)

// # Pending Login Repository

// RedisPendingLoginRepository implements PendingLoginRepository using Redis.
//
// The TTL on every entry is what enforces challenge expiry: there is no
// sweeper, Redis simply forgets abandoned logins.
type RedisPendingLoginRepository struct {
	client *redis.Client
}

// NewPendingLoginRepository creates a new Redis-backed PendingLoginRepository.
func NewPendingLoginRepository(client *redis.Client) *RedisPendingLoginRepository {
	return &RedisPendingLoginRepository{client: client}
}

/*
Set stores a pending login under its opaque token with a TTL.

Parameters:
  - ctx: context.Context
  - token: string
  - pending: *PendingLogin
  - ttl: time.Duration

Returns:
  - error: Serialization or execution errors
*/
func (repository *RedisPendingLoginRepository) Set(ctx context.Context, token string, pending *PendingLogin, ttl time.Duration) error {
	key := constants.RedisPrefixPendingLogin + token

	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("redis_pending_login_encode_failed: %w", err)
	}

	if err := repository.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis_pending_login_set_failed: %w", err)
	}

	return nil
}

/*
Get retrieves the pending login for a given token.

Description: Returns apperr.NotFound if the token is absent or expired.

Parameters:
  - ctx: context.Context
  - token: string

Returns:
  - *PendingLogin: Challenge state
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisPendingLoginRepository) Get(ctx context.Context, token string) (*PendingLogin, error) {
	key := constants.RedisPrefixPendingLogin + token

	data, err := repository.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Pending verification")
		}
		return nil, fmt.Errorf("redis_pending_login_get_failed: %w", err)
	}

	pending := &PendingLogin{}
	if err := json.Unmarshal(data, pending); err != nil {
		return nil, fmt.Errorf("redis_pending_login_decode_failed: %w", err)
	}

	return pending, nil
}

/*
Delete removes the pending login from Redis. Idempotent.

Parameters:
  - ctx: context.Context
  - token: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisPendingLoginRepository) Delete(ctx context.Context, token string) error {
	key := constants.RedisPrefixPendingLogin + token

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_pending_login_delete_failed: %w", err)
	}

	return nil
}

// # Session Repository

// RedisSessionRepository implements SessionRepository using Redis.
//
// One key per account holds the hash of the current access token, so a
// fresh login displaces any previous session for the same user.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Set records the active session token hash for an account.

Parameters:
  - ctx: context.Context
  - userID: string
  - tokenHash: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Set(ctx context.Context, userID, tokenHash string, ttl time.Duration) error {
	key := constants.RedisPrefixSession + userID

	if err := repository.client.Set(ctx, key, tokenHash, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

/*
Get retrieves the active session token hash for an account.

Description: Returns apperr.NotFound when no session exists.

Parameters:
  - ctx: context.Context
  - userID: string

Returns:
  - string: Token hash
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) Get(ctx context.Context, userID string) (string, error) {
	key := constants.RedisPrefixSession + userID

	tokenHash, err := repository.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Active session")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}

	return tokenHash, nil
}

/*
Delete removes the account's session record. Idempotent.

Parameters:
  - ctx: context.Context
  - userID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Delete(ctx context.Context, userID string) error {
	key := constants.RedisPrefixSession + userID

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
