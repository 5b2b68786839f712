// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

// Package schema holds typed table and column definitions for every
// relation the marketplace owns.
//
// # Why not raw strings?
//
// Query builders reference these definitions instead of inlining column
// names, so a schema rename is a single-file change and typos fail at
// compile time rather than at query time.
package schema

// CatalogItemTable represents the 'catalog.item' table
type CatalogItemTable struct {
	Table         string
	ID            string
	Title         string
	Slug          string
	Description   string
	Price         string
	OriginalPrice string
	FeePercentage string
	Category      string
	ImageURL      string
	Features      string
	Rating        string
	IsPopular     string
	Duration      string
	Location      string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogItem is the schema definition for catalog.item
var CatalogItem = CatalogItemTable{
	Table:         "catalog.item",
	ID:            "id",
	Title:         "title",
	Slug:          "slug",
	Description:   "description",
	Price:         "price",
	OriginalPrice: "originalprice",
	FeePercentage: "feepercentage",
	Category:      "category",
	ImageURL:      "imageurl",
	Features:      "features",
	Rating:        "rating",
	IsPopular:     "ispopular",
	Duration:      "duration",
	Location:      "location",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t CatalogItemTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.Price, t.OriginalPrice,
		t.FeePercentage, t.Category, t.ImageURL, t.Features, t.Rating,
		t.IsPopular, t.Duration, t.Location, t.CreatedAt, t.UpdatedAt,
	}
}
