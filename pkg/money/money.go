// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

// Package money normalizes marketplace price values into whole Leones.
//
// # Why coercion lives here
//
// Catalog data and cart snapshots from older clients carry prices either as
// plain integers or as display strings like "Le 10,000". All of that
// loose input is funneled through [Parse] at the ingestion boundary so the
// cart and catalog logic only ever see a normalized integer amount.
// The Leone has no decimal subunits, so amounts are whole int64 values.
package money

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a price in whole Leones.
type Amount int64

// Parse coerces a loosely-formatted price value into an [Amount].
//
// # Accepted inputs
//   - integer or float JSON numbers ("5000", "5000.0")
//   - display strings with currency markers ("Le 10,000", "SLL 5,000")
//
// All characters except digits and the decimal point are stripped before
// parsing. Unparseable or empty input yields zero — a missing price must
// never abort a cart total computation.
func Parse(raw string) Amount {
	var builder strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			builder.WriteRune(r)
		}
	}

	cleaned := builder.String()
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return Amount(value)
}

// Format renders the amount as a display string, e.g. "SLL 10,000".
func (a Amount) Format() string {
	digits := strconv.FormatInt(int64(a), 10)

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	// Insert thousands separators right-to-left.
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := "SLL " + strings.Join(groups, ",")
	if negative {
		formatted = "SLL -" + strings.Join(groups, ",")
	}
	return formatted
}

// UnmarshalJSON accepts both number and string encodings of a price.
//
// Cart snapshots written by early clients stored prices as display strings;
// this keeps those snapshots loadable without a data migration.
func (a *Amount) UnmarshalJSON(data []byte) error {
	// Fast path: plain JSON number.
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*a = Amount(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("money: value is neither number nor string: %w", err)
	}

	*a = Parse(text)
	return nil
}
