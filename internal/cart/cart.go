// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

/*
Package cart maintains the set of items a shopper intends to purchase and
the derived quantities and totals, durable across sessions.

# Architecture

The cart is a single document: the full line collection is loaded as one
snapshot, mutated in memory, and written back whole on every change
(no incremental or log-based persistence). A corrupt or missing snapshot
degrades to an empty cart — never to an error surfaced to the shopper.

# Invariants

  - One line per catalog item: adding an item already present increments
    its quantity instead of creating a second line.
  - Quantity is always >= 1: a quantity driven to zero or below removes
    the line entirely.
*/
package cart

import (
	"encoding/json"

	"github.com/worldofalafia/marketplace-api/pkg/money"
)

// Line is one cart entry: a catalog item and its quantity.
//
// Title, Category, and ImageURL are display metadata carried through
// unchanged; the cart never interprets them.
type Line struct {
	ItemID    string       `json:"id"`
	Title     string       `json:"title"`
	Category  string       `json:"category"`
	ImageURL  string       `json:"image,omitempty"`
	UnitPrice money.Amount `json:"price"`
	Quantity  int          `json:"quantity"`
}

// Cart is the full line collection for one owner.
type Cart struct {
	Lines []Line `json:"lines"`
}

// # Mutations

// Add merges the given line into the cart.
//
// A non-positive quantity is floored to 1 — callers are not required to
// enforce the constraint. If a line with the same item ID exists, its
// quantity increases; otherwise a new line is appended.
func (cart *Cart) Add(line Line, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range cart.Lines {
		if cart.Lines[i].ItemID == line.ItemID {
			cart.Lines[i].Quantity += quantity
			return
		}
	}

	line.Quantity = quantity
	cart.Lines = append(cart.Lines, line)
}

// Remove deletes the line with the given item ID.
//
// Removing an absent item is a no-op, not an error: Remove is idempotent.
func (cart *Cart) Remove(itemID string) bool {
	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity sets a line's quantity to an absolute value.
//
// A quantity of zero or below behaves exactly as [Cart.Remove]. Setting the
// quantity of an absent item is a no-op.
func (cart *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		cart.Remove(itemID)
		return
	}

	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemID {
			cart.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the line collection.
func (cart *Cart) Clear() {
	cart.Lines = nil
}

// # Derived Values

// ItemCount returns the sum of all line quantities.
func (cart *Cart) ItemCount() int {
	total := 0
	for i := range cart.Lines {
		total += cart.Lines[i].Quantity
	}
	return total
}

// Total returns the sum of unit price times quantity over all lines.
//
// Unit prices already passed through [money.Amount] coercion at snapshot
// decode time, so loosely-formatted string prices from older snapshots
// contribute their numeric value and unparseable prices contribute zero.
func (cart *Cart) Total() money.Amount {
	var total money.Amount
	for i := range cart.Lines {
		total += cart.Lines[i].UnitPrice * money.Amount(cart.Lines[i].Quantity)
	}
	return total
}

// Contains reports whether a line with the given item ID exists,
// regardless of quantity.
func (cart *Cart) Contains(itemID string) bool {
	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemID {
			return true
		}
	}
	return false
}

// # Snapshot Codec

// EncodeSnapshot serializes the full line collection as one JSON document.
func EncodeSnapshot(cart *Cart) ([]byte, error) {
	return json.Marshal(cart)
}

// DecodeSnapshot deserializes a snapshot, failing soft.
//
// Absent, empty, or malformed input yields an empty cart and reports
// ok=false so the caller can log the corruption. It never returns an
// error: a broken snapshot must not take the cart feature down.
func DecodeSnapshot(data []byte) (cart *Cart, ok bool) {
	cart = &Cart{}
	if len(data) == 0 {
		return cart, false
	}

	if err := json.Unmarshal(data, cart); err != nil {
		return &Cart{}, false
	}
	return cart, true
}
