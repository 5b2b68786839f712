// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package schema

// CrmEnquiryTable represents the 'crm.enquiry' table
type CrmEnquiryTable struct {
	Table            string
	ID               string
	Name             string
	Email            string
	Phone            string
	Message          string
	PreferredContact string
	PreferredDate    string
	Location         string
	Quantity         string
	ItemID           string
	ItemTitle        string
	Category         string
	UnitPrice        string
	TotalPrice       string
	Delivered        string
	CreatedAt        string
}

// CrmEnquiry is the schema definition for crm.enquiry
var CrmEnquiry = CrmEnquiryTable{
	Table:            "crm.enquiry",
	ID:               "id",
	Name:             "name",
	Email:            "email",
	Phone:            "phone",
	Message:          "message",
	PreferredContact: "preferredcontact",
	PreferredDate:    "preferreddate",
	Location:         "location",
	Quantity:         "quantity",
	ItemID:           "itemid",
	ItemTitle:        "itemtitle",
	Category:         "category",
	UnitPrice:        "unitprice",
	TotalPrice:       "totalprice",
	Delivered:        "delivered",
	CreatedAt:        "createdat",
}

// Columns returns all standard column names
func (t CrmEnquiryTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Phone, t.Message, t.PreferredContact,
		t.PreferredDate, t.Location, t.Quantity, t.ItemID, t.ItemTitle,
		t.Category, t.UnitPrice, t.TotalPrice, t.Delivered, t.CreatedAt,
	}
}
