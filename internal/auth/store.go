// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package auth

import (
	"context"
	"time"
)

// # Repository Contracts

// UserRepository abstracts persistent account storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdatePrivacySettings(ctx context.Context, userID string, settings PrivacySettings) error
	UpdateTwoFactor(ctx context.Context, userID string, enabled bool, method TwoFactorMethod, secret string) error
}

// PendingLoginRepository stores unfinished two-factor logins keyed by the
// opaque pending token.
//
// # Contract
//
// Get on an absent or expired token returns apperr.NotFound. Delete is
// idempotent. Entries must expire on their own: a shopper who abandons a
// login leaves no permanent state behind.
type PendingLoginRepository interface {
	Set(ctx context.Context, token string, pending *PendingLogin, ttl time.Duration) error
	Get(ctx context.Context, token string) (*PendingLogin, error)
	Delete(ctx context.Context, token string) error
}

// SessionRepository tracks the one active session per account.
//
// The stored value is the hash of the access token, so a storage breach
// never yields usable credentials.
type SessionRepository interface {
	Set(ctx context.Context, userID, tokenHash string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}
