// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldofalafia/marketplace-api/internal/cart"
	"github.com/worldofalafia/marketplace-api/pkg/money"
)

func lineFixture(itemID string, price money.Amount) cart.Line {
	return cart.Line{
		ItemID:    itemID,
		Title:     "Item " + itemID,
		Category:  "electronics",
		UnitPrice: price,
	}
}

/*
TestCart_AddMergesDuplicates verifies the one-line-per-item invariant:
adding an item already in the cart increments its quantity.
*/
func TestCart_AddMergesDuplicates(t *testing.T) {
	current := &cart.Cart{}

	current.Add(lineFixture("A", 1000), 1)
	current.Add(lineFixture("A", 1000), 2)

	require.Len(t, current.Lines, 1)
	assert.Equal(t, 3, current.Lines[0].Quantity)
	assert.Equal(t, 3, current.ItemCount())
	assert.Equal(t, money.Amount(3000), current.Total())
}

/*
TestCart_AddFloorsQuantity verifies that a non-positive quantity is coerced
to 1 instead of rejected.
*/
func TestCart_AddFloorsQuantity(t *testing.T) {
	current := &cart.Cart{}

	current.Add(lineFixture("A", 500), 0)
	current.Add(lineFixture("B", 500), -5)

	require.Len(t, current.Lines, 2)
	assert.Equal(t, 1, current.Lines[0].Quantity)
	assert.Equal(t, 1, current.Lines[1].Quantity)
}

/*
TestCart_DerivedValues verifies item count and total over mixed lines.
*/
func TestCart_DerivedValues(t *testing.T) {
	current := &cart.Cart{}
	current.Add(lineFixture("A", 10000), 2)
	current.Add(lineFixture("B", 5000), 1)

	assert.Equal(t, 3, current.ItemCount())
	assert.Equal(t, money.Amount(25000), current.Total())

	sum := 0
	for _, line := range current.Lines {
		sum += line.Quantity
	}
	assert.Equal(t, sum, current.ItemCount())
}

/*
TestCart_SetQuantityZeroRemoves verifies that driving a quantity to zero
collapses the line entirely, identical to removing it.
*/
func TestCart_SetQuantityZeroRemoves(t *testing.T) {
	current := &cart.Cart{}
	current.Add(lineFixture("A", 1000), 1)
	current.Add(lineFixture("B", 2000), 2)

	current.SetQuantity("B", 0)

	assert.False(t, current.Contains("B"))
	require.Len(t, current.Lines, 1)
	assert.Equal(t, "A", current.Lines[0].ItemID)
}

/*
TestCart_SetQuantityAbsent verifies that updating an item not in the cart
is a silent no-op.
*/
func TestCart_SetQuantityAbsent(t *testing.T) {
	current := &cart.Cart{}
	current.Add(lineFixture("A", 1000), 1)

	current.SetQuantity("ghost", 4)

	require.Len(t, current.Lines, 1)
	assert.Equal(t, 1, current.ItemCount())
}

/*
TestCart_RemoveIdempotent verifies that removing an absent item succeeds
without changing the cart.
*/
func TestCart_RemoveIdempotent(t *testing.T) {
	current := &cart.Cart{}
	current.Add(lineFixture("A", 1000), 1)

	assert.True(t, current.Remove("A"))
	assert.False(t, current.Remove("A"))
	assert.Empty(t, current.Lines)
	assert.Equal(t, 0, current.ItemCount())
	assert.Equal(t, money.Amount(0), current.Total())
}

/*
TestCart_Clear verifies that Clear empties the line collection.
*/
func TestCart_Clear(t *testing.T) {
	current := &cart.Cart{}
	current.Add(lineFixture("A", 1000), 2)
	current.Add(lineFixture("B", 2000), 1)

	current.Clear()

	assert.Empty(t, current.Lines)
	assert.Equal(t, 0, current.ItemCount())
}

/*
TestSnapshot_RoundTrip verifies that an encoded snapshot decodes back to
the same line collection.
*/
func TestSnapshot_RoundTrip(t *testing.T) {
	original := &cart.Cart{}
	original.Add(lineFixture("A", 8500000), 1)
	original.Add(lineFixture("B", 350000), 3)

	data, err := cart.EncodeSnapshot(original)
	require.NoError(t, err)

	decoded, ok := cart.DecodeSnapshot(data)
	require.True(t, ok)
	assert.Equal(t, original.Lines, decoded.Lines)
	assert.Equal(t, original.Total(), decoded.Total())
}

/*
TestSnapshot_FailSoft verifies that absent or corrupt snapshots degrade to
an empty cart rather than an error.
*/
func TestSnapshot_FailSoft(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", []byte(`{"lines":[{"id":"A"`)},
		{"wrong_shape", []byte(`"just a string"`)},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			decoded, ok := cart.DecodeSnapshot(testCase.data)
			assert.False(t, ok)
			require.NotNil(t, decoded)
			assert.Empty(t, decoded.Lines)
		})
	}
}

/*
TestSnapshot_CoercesStringPrices verifies that loosely-formatted string
prices in older snapshots decode to their numeric value, and unparseable
prices contribute zero.
*/
func TestSnapshot_CoercesStringPrices(t *testing.T) {
	data := []byte(`{"lines":[
		{"id":"A","title":"Legacy","category":"electronics","price":"Le 10,000","quantity":2},
		{"id":"B","title":"Broken","category":"electronics","price":"call us","quantity":1}
	]}`)

	decoded, ok := cart.DecodeSnapshot(data)
	require.True(t, ok)
	require.Len(t, decoded.Lines, 2)
	assert.Equal(t, money.Amount(10000), decoded.Lines[0].UnitPrice)
	assert.Equal(t, money.Amount(0), decoded.Lines[1].UnitPrice)
	assert.Equal(t, money.Amount(20000), decoded.Total())
}
