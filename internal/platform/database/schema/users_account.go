// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table            string
	ID               string
	Email            string
	Password         string
	DisplayName      string
	Role             string
	PhoneNumber      string
	AvatarURL        string
	TwoFactorEnabled string
	TwoFactorMethod  string
	TwoFactorSecret  string
	PrivacySettings  string
	CreatedAt        string
	UpdatedAt        string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:            "users.account",
	ID:               "id",
	Email:            "email",
	Password:         "passwordhash",
	DisplayName:      "displayname",
	Role:             "role",
	PhoneNumber:      "phonenumber",
	AvatarURL:        "avatarurl",
	TwoFactorEnabled: "twofactorenabled",
	TwoFactorMethod:  "twofactormethod",
	TwoFactorSecret:  "twofactorsecret",
	PrivacySettings:  "privacysettings",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.DisplayName, t.Role, t.PhoneNumber,
		t.AvatarURL, t.TwoFactorEnabled, t.TwoFactorMethod,
		t.TwoFactorSecret, t.PrivacySettings, t.CreatedAt, t.UpdatedAt,
	}
}
