// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

/*
Package catalog exposes the read side of the marketplace listings: the
items shoppers browse, the categories that group them, and the discounted
offers surfaced on the landing page.

# Architecture

The catalog is reference data for the rest of the system. The cart copies
an item's display fields and unit price into its own lines at add time, and
the enquiry flow stamps the item title and price into the archived enquiry.
Neither ever writes back.
*/
package catalog

import (
	"time"

	"github.com/worldofalafia/marketplace-api/pkg/money"
)

// # Domain Entities

// Item represents one marketplace listing.
//
// OriginalPrice, when higher than Price, marks the item as a discounted
// offer. FeePercentage applies to service listings (electronic money)
// priced as a percentage of the transferred amount rather than a flat
// price.
type Item struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Description   string       `json:"description,omitempty"`
	Price         money.Amount `json:"price"`
	OriginalPrice money.Amount `json:"original_price,omitempty"`
	FeePercentage float64      `json:"fee_percentage,omitempty"`
	Category      string       `json:"category"`
	ImageURL      string       `json:"image,omitempty"`
	Features      []string     `json:"features,omitempty"`
	Rating        float64      `json:"rating,omitempty"`
	IsPopular     bool         `json:"is_popular"`
	Duration      string       `json:"duration,omitempty"`
	Location      string       `json:"location,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Discounted reports whether the item carries a visible markdown.
func (item *Item) Discounted() bool {
	return item.OriginalPrice > item.Price
}

// Category is a listing group with its item count, as rendered in the
// storefront navigation.
type Category struct {
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}

// # Field Identifiers

const (
	FieldItemID   = "item_id"
	FieldCategory = "category"
)
