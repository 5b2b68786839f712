// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package schema

// CrmNewsletterTable represents the 'crm.newsletter' table
type CrmNewsletterTable struct {
	Table     string
	ID        string
	Email     string
	CreatedAt string
}

// CrmNewsletter is the schema definition for crm.newsletter
var CrmNewsletter = CrmNewsletterTable{
	Table:     "crm.newsletter",
	ID:        "id",
	Email:     "email",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t CrmNewsletterTable) Columns() []string {
	return []string{t.ID, t.Email, t.CreatedAt}
}
