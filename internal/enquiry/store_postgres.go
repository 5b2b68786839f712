// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package enquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/worldofalafia/marketplace-api/internal/platform/database/schema"
)

// enquiryColumns is the shared projection, derived from the schema
// definition. The Scan order below must follow it.
var enquiryColumns = strings.Join(schema.CrmEnquiry.Columns(), ", ")

// PostgresRepository implements the enquiry Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the enquiry Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create archives a new enquiry into the crm.enquiry table.

Parameters:
  - ctx: context.Context
  - enquiry: *Enquiry

Returns:
  - error: Storage failures
*/
func (repository *PostgresRepository) Create(ctx context.Context, enquiry *Enquiry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		schema.CrmEnquiry.Table, enquiryColumns)

	if enquiry.CreatedAt.IsZero() {
		enquiry.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		enquiry.ID,
		enquiry.Name,
		enquiry.Email,
		enquiry.Phone,
		enquiry.Message,
		enquiry.PreferredContact,
		enquiry.PreferredDate,
		enquiry.Location,
		enquiry.Quantity,
		enquiry.ItemID,
		enquiry.ItemTitle,
		enquiry.Category,
		enquiry.UnitPrice,
		enquiry.TotalPrice,
		enquiry.Delivered,
		enquiry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_enquiry_repo_create_failed: %w", err)
	}

	return nil
}

/*
List returns all archived enquiries, newest first.

Parameters:
  - ctx: context.Context

Returns:
  - []Enquiry: Archived enquiries
  - error: Execution errors
*/
func (repository *PostgresRepository) List(ctx context.Context) ([]Enquiry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		enquiryColumns, schema.CrmEnquiry.Table, schema.CrmEnquiry.CreatedAt)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_enquiry_repo_list_failed: %w", err)
	}
	defer rows.Close()

	enquiries := []Enquiry{}
	for rows.Next() {
		var enquiry Enquiry
		err := rows.Scan(
			&enquiry.ID,
			&enquiry.Name,
			&enquiry.Email,
			&enquiry.Phone,
			&enquiry.Message,
			&enquiry.PreferredContact,
			&enquiry.PreferredDate,
			&enquiry.Location,
			&enquiry.Quantity,
			&enquiry.ItemID,
			&enquiry.ItemTitle,
			&enquiry.Category,
			&enquiry.UnitPrice,
			&enquiry.TotalPrice,
			&enquiry.Delivered,
			&enquiry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_enquiry_repo_scan_failed: %w", err)
		}
		enquiries = append(enquiries, enquiry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_enquiry_repo_rows_failed: %w", err)
	}

	return enquiries, nil
}

/*
MarkDelivered records a successful upstream forward on the archived row.

Parameters:
  - ctx: context.Context
  - id: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) MarkDelivered(ctx context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.CrmEnquiry.Table, schema.CrmEnquiry.Delivered, schema.CrmEnquiry.ID)

	_, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_enquiry_repo_mark_delivered_failed: %w", err)
	}

	return nil
}
