// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/worldofalafia/marketplace-api/internal/notify"
	"github.com/worldofalafia/marketplace-api/internal/platform/ctxutil"
	"github.com/worldofalafia/marketplace-api/internal/platform/validate"
)

// Service orchestrates cart mutations: load snapshot, mutate in memory,
// persist, notify.
//
// # Failure Semantics
//
// The in-memory mutation is authoritative. A failed snapshot write is
// logged and the mutated cart is still returned to the caller — the only
// risk is losing this session's changes on reload. There is no write retry.
type Service struct {
	store    SnapshotStore
	items    ItemSource
	notifier notify.Notifier
}

// NewService constructs a new cart [Service] with its dependencies.
func NewService(store SnapshotStore, items ItemSource, notifier notify.Notifier) *Service {
	return &Service{
		store:    store,
		items:    items,
		notifier: notifier,
	}
}

// Get returns the current cart for an owner.
func (service *Service) Get(ctx context.Context, ownerID string) (*Cart, error) {
	return service.load(ctx, ownerID)
}

// AddItem resolves an item from the catalog and merges it into the cart.
//
// # Business Rules
//   - quantity < 1 is floored to 1, not rejected.
//   - An item already in the cart has its quantity incremented.
func (service *Service) AddItem(ctx context.Context, ownerID, itemID string, quantity int) (*Cart, error) {
	validator := &validate.Validator{}
	validator.Required("item_id", itemID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	line, err := service.items.LookupItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	current, err := service.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	current.Add(*line, quantity)
	service.persist(ctx, ownerID, current)

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Added to Cart",
		Description: fmt.Sprintf("%s has been added to your cart.", line.Title),
		Severity:    notify.SeveritySuccess,
	})

	return current, nil
}

// RemoveItem deletes a line from the cart. Idempotent.
func (service *Service) RemoveItem(ctx context.Context, ownerID, itemID string) (*Cart, error) {
	current, err := service.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	current.Remove(itemID)
	service.persist(ctx, ownerID, current)

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Item Removed",
		Description: "Item has been removed from your cart.",
		Severity:    notify.SeverityInfo,
	})

	return current, nil
}

// UpdateQuantity sets a line's quantity to an absolute value.
//
// A quantity of zero or below behaves exactly as [Service.RemoveItem].
func (service *Service) UpdateQuantity(ctx context.Context, ownerID, itemID string, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return service.RemoveItem(ctx, ownerID, itemID)
	}

	current, err := service.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	current.SetQuantity(itemID, quantity)
	service.persist(ctx, ownerID, current)

	return current, nil
}

// Clear empties the cart and persists the empty snapshot.
func (service *Service) Clear(ctx context.Context, ownerID string) (*Cart, error) {
	current, err := service.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	current.Clear()
	service.persist(ctx, ownerID, current)

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Cart Cleared",
		Description: "All items have been removed from your cart.",
		Severity:    notify.SeverityInfo,
	})

	return current, nil
}

// load reads the snapshot, degrading a read failure to an empty cart.
//
// Storage unavailability must never prevent the shopper from continuing
// with a fresh in-memory cart.
func (service *Service) load(ctx context.Context, ownerID string) (*Cart, error) {
	current, err := service.store.Load(ctx, ownerID)
	if err != nil {
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "cart_snapshot_load_failed",
			slog.String("owner_id", ownerID),
			slog.Any("error", err),
		)
		return &Cart{}, nil
	}
	return current, nil
}

// persist writes the snapshot, logging failures instead of returning them.
func (service *Service) persist(ctx context.Context, ownerID string, cart *Cart) {
	if err := service.store.Save(ctx, ownerID, cart); err != nil {
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "cart_snapshot_save_failed",
			slog.String("owner_id", ownerID),
			slog.Any("error", err),
		)
	}
}
