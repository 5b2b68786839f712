// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
	"github.com/worldofalafia/marketplace-api/internal/platform/database/schema"
	"github.com/worldofalafia/marketplace-api/internal/platform/dberr"
)

// accountColumns is the shared projection, derived from the schema
// definition. The Scan order in scanOne follows it.
var accountColumns = strings.Join(schema.UserAccount.Columns(), ", ")

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new user record into the users.account table.

Description: Privacy settings are serialized as a JSONB document so new
consent fields never require a schema migration.

Parameters:
  - ctx: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate email, or storage errors
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		schema.UserAccount.Table, accountColumns)

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	settings, err := json.Marshal(user.PrivacySettings)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_settings_encode_failed: %w", err)
	}

	_, err = repository.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.Role,
		user.PhoneNumber,
		user.AvatarURL,
		user.TwoFactorEnabled,
		user.TwoFactorMethod,
		user.TwoFactorSecret,
		settings,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "account")
	}

	return nil
}

/*
FindByEmail retrieves a user record by their unique email address.

Parameters:
  - ctx: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns, schema.UserAccount.Table, schema.UserAccount.Email)

	return repository.scanOne(repository.pool.QueryRow(ctx, query, email), "find_by_email")
}

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - ctx: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	return repository.scanOne(repository.pool.QueryRow(ctx, query, id), "find_by_id")
}

/*
UpdatePrivacySettings replaces the account's consent document.

Description: The whole JSONB document is replaced in one statement, matching
the write model of the service layer (no field-level merges).

Parameters:
  - ctx: context.Context
  - userID: string
  - settings: PrivacySettings

Returns:
  - error: Update failures
*/
func (repository *PostgresUserRepository) UpdatePrivacySettings(ctx context.Context, userID string, settings PrivacySettings) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.PrivacySettings,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID)

	document, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_settings_encode_failed: %w", err)
	}

	tag, err := repository.pool.Exec(ctx, query, userID, document, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_user_repo_update_settings_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User account")
	}

	return nil
}

/*
UpdateTwoFactor sets the account's second-factor enrollment.

Parameters:
  - ctx: context.Context
  - userID: string
  - enabled: bool
  - method: TwoFactorMethod
  - secret: string (TOTP shared secret; empty for delivered-code methods)

Returns:
  - error: Execution errors
*/
func (repository *PostgresUserRepository) UpdateTwoFactor(ctx context.Context, userID string, enabled bool, method TwoFactorMethod, secret string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.TwoFactorEnabled,
		schema.UserAccount.TwoFactorMethod, schema.UserAccount.TwoFactorSecret,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID)

	tag, err := repository.pool.Exec(ctx, query, userID, enabled, method, secret, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_user_repo_update_two_factor_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User account")
	}

	return nil
}

// scanOne hydrates a single account row, decoding the privacy document.
func (repository *PostgresUserRepository) scanOne(row pgx.Row, operation string) (*User, error) {
	user := &User{}
	var settings []byte

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.Role,
		&user.PhoneNumber,
		&user.AvatarURL,
		&user.TwoFactorEnabled,
		&user.TwoFactorMethod,
		&user.TwoFactorSecret,
		&settings,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User account")
		}
		return nil, fmt.Errorf("postgres_user_repo_%s_failed: %w", operation, err)
	}

	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &user.PrivacySettings); err != nil {
			return nil, fmt.Errorf("postgres_user_repo_settings_decode_failed: %w", err)
		}
	}

	return user, nil
}
