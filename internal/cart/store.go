// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package cart

import "context"

// SnapshotStore persists the whole cart document per owner.
//
// # Contract
//
// Load must fail soft: an absent or corrupt snapshot yields an empty cart,
// never an error. Save replaces the entire stored document — there are no
// field-level writes, so no merge logic exists anywhere in the system.
type SnapshotStore interface {
	Load(ctx context.Context, ownerID string) (*Cart, error)
	Save(ctx context.Context, ownerID string, cart *Cart) error
}

// ItemSource is the read-only catalog lookup the cart consumes.
//
// The cart never mutates catalog data; it only copies the display fields
// and unit price of an item into a new line.
type ItemSource interface {
	LookupItem(ctx context.Context, itemID string) (*Line, error)
}
