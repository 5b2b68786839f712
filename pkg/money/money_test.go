// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldofalafia/marketplace-api/pkg/money"
)

/*
TestParse verifies coercion of loosely-formatted price inputs.
*/
func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  money.Amount
	}{
		{"display string with prefix", "Le 10,000", 10000},
		{"sll prefix", "SLL 5,000", 5000},
		{"plain digits", "5000", 5000},
		{"decimal point", "1250.00", 1250},
		{"empty input", "", 0},
		{"no digits at all", "free", 0},
		{"multiple dots are unparseable", "1.2.3", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, money.Parse(tc.input))
		})
	}
}

/*
TestAmount_Format verifies thousands grouping in display output.
*/
func TestAmount_Format(t *testing.T) {
	assert.Equal(t, "SLL 0", money.Amount(0).Format())
	assert.Equal(t, "SLL 950", money.Amount(950).Format())
	assert.Equal(t, "SLL 10,000", money.Amount(10000).Format())
	assert.Equal(t, "SLL 8,500,000", money.Amount(8500000).Format())
}

/*
TestAmount_UnmarshalJSON verifies that both number and string price
encodings decode to the same amount.
*/
func TestAmount_UnmarshalJSON(t *testing.T) {
	type line struct {
		Price money.Amount `json:"price"`
	}

	var fromNumber line
	require.NoError(t, json.Unmarshal([]byte(`{"price": 5000}`), &fromNumber))
	assert.Equal(t, money.Amount(5000), fromNumber.Price)

	var fromString line
	require.NoError(t, json.Unmarshal([]byte(`{"price": "Le 10,000"}`), &fromString))
	assert.Equal(t, money.Amount(10000), fromString.Price)

	var invalid line
	require.Error(t, json.Unmarshal([]byte(`{"price": [1]}`), &invalid))
}
