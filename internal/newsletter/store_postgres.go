// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package newsletter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/worldofalafia/marketplace-api/internal/platform/database/schema"
	"github.com/worldofalafia/marketplace-api/internal/platform/dberr"
)

// PostgresRepository implements the newsletter Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the newsletter Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new subscription into the crm.newsletter table.

Description: The unique index on email turns a duplicate signup into an
apperr.Conflict through the dberr mapping.

Parameters:
  - ctx: context.Context
  - subscription: *Subscription

Returns:
  - error: apperr.Conflict on duplicates, or storage failures
*/
func (repository *PostgresRepository) Create(ctx context.Context, subscription *Subscription) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3)`,
		schema.CrmNewsletter.Table, strings.Join(schema.CrmNewsletter.Columns(), ", "))

	if subscription.CreatedAt.IsZero() {
		subscription.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		subscription.ID,
		subscription.Email,
		subscription.CreatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "newsletter subscription")
	}

	return nil
}
