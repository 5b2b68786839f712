// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package catalog

import "context"

// Repository abstracts persistent catalog storage.
//
// All methods are reads; listings are maintained through migrations and
// merchant tooling outside this service.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, category string) ([]Item, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListOffers(ctx context.Context) ([]Item, error)
}
