// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
	"github.com/worldofalafia/marketplace-api/internal/platform/database/schema"
)

// itemColumns is the shared projection for all item queries, derived from
// the schema definition so a column rename cannot drift past it.
var itemColumns = strings.Join(schema.CatalogItem.Columns(), ", ")

// PostgresRepository implements the catalog Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the catalog Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
FindByID retrieves one listing by its identifier.

Parameters:
  - ctx: context.Context
  - id: string

Returns:
  - *Item: Hydrated listing
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		itemColumns, schema.CatalogItem.Table, schema.CatalogItem.ID)

	item, err := scanItem(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Catalog item")
		}
		return nil, fmt.Errorf("postgres_catalog_find_by_id_failed: %w", err)
	}

	return item, nil
}

/*
List retrieves listings, optionally filtered to one category.

Description: An empty category returns the whole catalog. Popular items
sort first so the storefront's default view needs no extra query.

Parameters:
  - ctx: context.Context
  - category: string (empty for all)

Returns:
  - []Item: Matching listings, possibly empty
  - error: Execution errors
*/
func (repository *PostgresRepository) List(ctx context.Context, category string) ([]Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, itemColumns, schema.CatalogItem.Table)
	args := []any{}

	if category != "" {
		query += fmt.Sprintf(` WHERE %s = $1`, schema.CatalogItem.Category)
		args = append(args, category)
	}
	query += fmt.Sprintf(` ORDER BY %s DESC, %s ASC`,
		schema.CatalogItem.IsPopular, schema.CatalogItem.Title)

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres_catalog_list_failed: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

/*
ListCategories returns the distinct categories with their item counts.

Parameters:
  - ctx: context.Context

Returns:
  - []Category: Categories ordered by name
  - error: Execution errors
*/
func (repository *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM %s
		GROUP BY %s
		ORDER BY %s`,
		schema.CatalogItem.Category, schema.CatalogItem.Table,
		schema.CatalogItem.Category, schema.CatalogItem.Category)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_catalog_categories_failed: %w", err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.Name, &category.ItemCount); err != nil {
			return nil, fmt.Errorf("postgres_catalog_categories_scan_failed: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_catalog_categories_rows_failed: %w", err)
	}

	return categories, nil
}

/*
ListOffers returns listings whose original price exceeds the current price.

Description: Sorted by absolute markdown, largest first, matching the
ordering of the storefront's offers rail.

Parameters:
  - ctx: context.Context

Returns:
  - []Item: Discounted listings
  - error: Execution errors
*/
func (repository *PostgresRepository) ListOffers(ctx context.Context) ([]Item, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s > %s
		ORDER BY (%s - %s) DESC`,
		itemColumns, schema.CatalogItem.Table,
		schema.CatalogItem.OriginalPrice, schema.CatalogItem.Price,
		schema.CatalogItem.OriginalPrice, schema.CatalogItem.Price)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_catalog_offers_failed: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// scanItem hydrates a single listing row.
func scanItem(row pgx.Row) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Slug,
		&item.Description,
		&item.Price,
		&item.OriginalPrice,
		&item.FeePercentage,
		&item.Category,
		&item.ImageURL,
		&item.Features,
		&item.Rating,
		&item.IsPopular,
		&item.Duration,
		&item.Location,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// collectItems drains a result set into a slice.
func collectItems(rows pgx.Rows) ([]Item, error) {
	items := []Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_catalog_scan_failed: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_catalog_rows_failed: %w", err)
	}

	return items, nil
}
