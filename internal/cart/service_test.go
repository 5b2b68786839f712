// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldofalafia/marketplace-api/internal/cart"
	"github.com/worldofalafia/marketplace-api/internal/notify"
	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
	"github.com/worldofalafia/marketplace-api/pkg/money"
)

// # Test Doubles

// memorySnapshotStore keeps snapshots in a map, optionally failing writes.
type memorySnapshotStore struct {
	snapshots map[string][]byte
	saveErr   error
	saves     int
}

func newMemorySnapshotStore() *memorySnapshotStore {
	return &memorySnapshotStore{snapshots: map[string][]byte{}}
}

func (store *memorySnapshotStore) Load(_ context.Context, ownerID string) (*cart.Cart, error) {
	loaded, _ := cart.DecodeSnapshot(store.snapshots[ownerID])
	return loaded, nil
}

func (store *memorySnapshotStore) Save(_ context.Context, ownerID string, current *cart.Cart) error {
	store.saves++
	if store.saveErr != nil {
		return store.saveErr
	}
	data, err := cart.EncodeSnapshot(current)
	if err != nil {
		return err
	}
	store.snapshots[ownerID] = data
	return nil
}

// staticItemSource resolves items from a fixed map.
type staticItemSource struct {
	items map[string]cart.Line
}

func (source *staticItemSource) LookupItem(_ context.Context, itemID string) (*cart.Line, error) {
	line, ok := source.items[itemID]
	if !ok {
		return nil, apperr.NotFound("catalog item")
	}
	return &line, nil
}

// spyNotifier records every emitted notification.
type spyNotifier struct {
	sent []notify.Notification
}

func (spy *spyNotifier) Notify(_ context.Context, notification notify.Notification) {
	spy.sent = append(spy.sent, notification)
}

func newTestService() (*cart.Service, *memorySnapshotStore, *spyNotifier) {
	store := newMemorySnapshotStore()
	source := &staticItemSource{items: map[string]cart.Line{
		"A": {ItemID: "A", Title: "HP EliteBook 840 G5", Category: "electronics", UnitPrice: 1000},
		"B": {ItemID: "B", Title: "Premium Toiletries Set", Category: "toiletries", UnitPrice: 5000},
	}}
	spy := &spyNotifier{}
	return cart.NewService(store, source, spy), store, spy
}

// # Scenarios

/*
TestService_AddItem_MergesAndNotifies verifies the add flow end to end:
catalog lookup, duplicate merging across calls, persistence, and the
success notification.
*/
func TestService_AddItem_MergesAndNotifies(t *testing.T) {
	service, store, spy := newTestService()
	ctx := context.Background()

	_, err := service.AddItem(ctx, "owner-1", "A", 1)
	require.NoError(t, err)

	current, err := service.AddItem(ctx, "owner-1", "A", 2)
	require.NoError(t, err)

	require.Len(t, current.Lines, 1)
	assert.Equal(t, 3, current.Lines[0].Quantity)
	assert.Equal(t, money.Amount(3000), current.Total())
	assert.Equal(t, 2, store.saves)

	require.Len(t, spy.sent, 2)
	assert.Equal(t, "Added to Cart", spy.sent[0].Title)
	assert.Equal(t, notify.SeveritySuccess, spy.sent[0].Severity)
	assert.Contains(t, spy.sent[0].Description, "HP EliteBook 840 G5")

	// Reload from the store to confirm the snapshot was written whole.
	reloaded, err := service.Get(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, current.Lines, reloaded.Lines)
}

/*
TestService_AddItem_UnknownItem verifies that an unknown catalog item is
rejected and nothing is persisted or announced.
*/
func TestService_AddItem_UnknownItem(t *testing.T) {
	service, store, spy := newTestService()

	_, err := service.AddItem(context.Background(), "owner-1", "ghost", 1)

	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, 404, appError.HTTPStatus)
	assert.Zero(t, store.saves)
	assert.Empty(t, spy.sent)
}

/*
TestService_UpdateQuantity_ZeroRemoves verifies that updating a quantity to
zero is equivalent to removing the item.
*/
func TestService_UpdateQuantity_ZeroRemoves(t *testing.T) {
	service, _, spy := newTestService()
	ctx := context.Background()

	_, err := service.AddItem(ctx, "owner-1", "A", 1)
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "owner-1", "B", 2)
	require.NoError(t, err)

	current, err := service.UpdateQuantity(ctx, "owner-1", "B", 0)
	require.NoError(t, err)

	assert.False(t, current.Contains("B"))
	assert.True(t, current.Contains("A"))

	// Zero delegates to removal, including the removal notification.
	last := spy.sent[len(spy.sent)-1]
	assert.Equal(t, "Item Removed", last.Title)
}

/*
TestService_RemoveItem_Idempotent verifies that removing an item twice
succeeds both times.
*/
func TestService_RemoveItem_Idempotent(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.AddItem(ctx, "owner-1", "A", 1)
	require.NoError(t, err)

	first, err := service.RemoveItem(ctx, "owner-1", "A")
	require.NoError(t, err)
	assert.Empty(t, first.Lines)

	second, err := service.RemoveItem(ctx, "owner-1", "A")
	require.NoError(t, err)
	assert.Empty(t, second.Lines)
}

/*
TestService_PersistFailureStillMutates verifies the failure semantics: a
failed snapshot write is absorbed and the mutated cart is still returned.
*/
func TestService_PersistFailureStillMutates(t *testing.T) {
	service, store, spy := newTestService()
	store.saveErr = errors.New("redis down")

	current, err := service.AddItem(context.Background(), "owner-1", "A", 2)

	require.NoError(t, err)
	require.Len(t, current.Lines, 1)
	assert.Equal(t, 2, current.Lines[0].Quantity)
	require.Len(t, spy.sent, 1)
	assert.Equal(t, "Added to Cart", spy.sent[0].Title)
}

/*
TestService_Clear verifies that clearing persists an empty snapshot and
announces it.
*/
func TestService_Clear(t *testing.T) {
	service, _, spy := newTestService()
	ctx := context.Background()

	_, err := service.AddItem(ctx, "owner-1", "A", 1)
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "owner-1", "B", 1)
	require.NoError(t, err)

	cleared, err := service.Clear(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, cleared.Lines)

	reloaded, err := service.Get(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Lines)

	last := spy.sent[len(spy.sent)-1]
	assert.Equal(t, "Cart Cleared", last.Title)
}

/*
TestService_CartsAreIsolatedPerOwner verifies that two owners never see
each other's lines.
*/
func TestService_CartsAreIsolatedPerOwner(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.AddItem(ctx, "guest-abc", "A", 1)
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "user-123", "B", 2)
	require.NoError(t, err)

	guest, err := service.Get(ctx, "guest-abc")
	require.NoError(t, err)
	user, err := service.Get(ctx, "user-123")
	require.NoError(t, err)

	assert.True(t, guest.Contains("A"))
	assert.False(t, guest.Contains("B"))
	assert.True(t, user.Contains("B"))
	assert.False(t, user.Contains("A"))
}
