// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

/*
Package enquiry handles customer purchase enquiries: the form a shopper
submits against a listing to start a conversation with the sales team.

# Architecture

Every enquiry is archived locally first and then forwarded to the upstream
CRM. The archive is the source of truth; the forward is best-effort and its
outcome is recorded on the row (delivered flag), so a CRM outage never
loses an enquiry.
*/
package enquiry

import (
	"time"

	"github.com/worldofalafia/marketplace-api/pkg/money"
)

// # Domain Entities

// Enquiry is one submitted purchase enquiry.
//
// Item fields are stamped from the catalog at submission time so the
// archive stays meaningful even after a listing changes or disappears.
type Enquiry struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Message          string       `json:"message,omitempty"`
	PreferredContact string       `json:"preferred_contact"`
	PreferredDate    string       `json:"preferred_date,omitempty"`
	Location         string       `json:"location,omitempty"`
	Quantity         int          `json:"quantity"`
	ItemID           string       `json:"item_id"`
	ItemTitle        string       `json:"item_title"`
	Category         string       `json:"category"`
	UnitPrice        money.Amount `json:"unit_price"`
	TotalPrice       money.Amount `json:"total_price"`
	Delivered        bool         `json:"delivered"`
	CreatedAt        time.Time    `json:"created_at"`
}

// # Field Identifiers

const (
	FieldName             = "name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldMessage          = "message"
	FieldPreferredContact = "preferred_contact"
	FieldItemID           = "item_id"
	FieldQuantity         = "quantity"
)

// Accepted contact channels for the sales team follow-up.
const (
	ContactPhone    = "phone"
	ContactEmail    = "email"
	ContactWhatsApp = "whatsapp"
)
