// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package catalog

import (
	"context"

	"github.com/worldofalafia/marketplace-api/pkg/slug"
)

// Service implements catalog read use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new catalog [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// GetItem returns one listing by ID.
func (service *Service) GetItem(ctx context.Context, itemID string) (*Item, error) {
	return service.repository.FindByID(ctx, itemID)
}

// ListItems returns listings, optionally restricted to one category.
//
// The category filter is slugified before matching, so display names
// ("Vehicle Rentals") and stored keys ("vehicle-rentals") both work.
func (service *Service) ListItems(ctx context.Context, category string) ([]Item, error) {
	if category != "" {
		category = slug.From(category)
	}

	return service.repository.List(ctx, category)
}

// ListCategories returns the storefront navigation groups.
func (service *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return service.repository.ListCategories(ctx)
}

// ListOffers returns the discounted listings, largest markdown first.
func (service *Service) ListOffers(ctx context.Context) ([]Item, error) {
	return service.repository.ListOffers(ctx)
}
