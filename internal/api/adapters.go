// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package api

import (
	"context"

	"github.com/worldofalafia/marketplace-api/internal/cart"
	"github.com/worldofalafia/marketplace-api/internal/catalog"
	"github.com/worldofalafia/marketplace-api/internal/enquiry"
)

// # Cross-Domain Adapters
//
// The cart and enquiry domains each declare their own narrow view of the
// catalog. These adapters satisfy those contracts from [catalog.Service]
// so the domains never import each other.

// CartItemSource adapts the catalog to the cart's [cart.ItemSource].
type CartItemSource struct {
	catalogService *catalog.Service
}

// NewCartItemSource wraps a catalog service for cart consumption.
func NewCartItemSource(service *catalog.Service) *CartItemSource {
	return &CartItemSource{catalogService: service}
}

// LookupItem resolves a listing into a cart line template.
func (source *CartItemSource) LookupItem(ctx context.Context, itemID string) (*cart.Line, error) {
	item, err := source.catalogService.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return &cart.Line{
		ItemID:    item.ID,
		Title:     item.Title,
		Category:  item.Category,
		ImageURL:  item.ImageURL,
		UnitPrice: item.Price,
	}, nil
}

// EnquiryItemSource adapts the catalog to the enquiry's [enquiry.ItemSource].
type EnquiryItemSource struct {
	catalogService *catalog.Service
}

// NewEnquiryItemSource wraps a catalog service for enquiry consumption.
func NewEnquiryItemSource(service *catalog.Service) *EnquiryItemSource {
	return &EnquiryItemSource{catalogService: service}
}

// Summarize resolves the listing fields an enquiry archives.
func (source *EnquiryItemSource) Summarize(ctx context.Context, itemID string) (*enquiry.ItemSummary, error) {
	item, err := source.catalogService.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return &enquiry.ItemSummary{
		ID:        item.ID,
		Title:     item.Title,
		Category:  item.Category,
		UnitPrice: item.Price,
	}, nil
}
