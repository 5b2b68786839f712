// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

/*
Package auth implements the account identity and session layer of the
marketplace.

It defines the core domain entities (User, PendingLogin, Session) and the
credential state machine that governs how a request moves from anonymous
to authenticated.

# Credential States

An identity is in exactly one of three states:

  - Anonymous: no credentials presented.
  - PendingSecondFactor: the password was accepted but a verification code
    is still outstanding. The user holds no session yet.
  - Authenticated: a full session exists and protected operations are
    available.

The pending state is reachable only for accounts with two-factor
authentication enabled; all other accounts move from Anonymous straight to
Authenticated on a successful login.
*/
package auth

import (
	"time"

	"github.com/worldofalafia/marketplace-api/internal/platform/sec"
)

// # Credential State Machine

// CredentialState identifies where an identity sits in the login lifecycle.
type CredentialState string

const (
	StateAnonymous           CredentialState = "anonymous"
	StatePendingSecondFactor CredentialState = "pending_second_factor"
	StateAuthenticated       CredentialState = "authenticated"
)

// TwoFactorMethod names the delivery channel for verification codes.
type TwoFactorMethod string

const (
	MethodEmail         TwoFactorMethod = "email"
	MethodSMS           TwoFactorMethod = "sms"
	MethodAuthenticator TwoFactorMethod = "authenticator"
)

// ValidTwoFactorMethod reports whether a raw string names a known method.
func ValidTwoFactorMethod(raw string) bool {
	switch TwoFactorMethod(raw) {
	case MethodEmail, MethodSMS, MethodAuthenticator:
		return true
	}
	return false
}

// # Domain Entities

// PrivacySettings holds the per-account consent and visibility choices.
//
// LastUpdated is stamped by the service on every change, never by the
// client.
type PrivacySettings struct {
	EmailNotifications bool      `json:"email_notifications"`
	MarketingEmails    bool      `json:"marketing_emails"`
	ProfileVisibility  string    `json:"profile_visibility"`
	DataSharing        bool      `json:"data_sharing"`
	LastUpdated        time.Time `json:"last_updated"`
}

// DefaultPrivacySettings returns the consent baseline for new accounts:
// transactional email on, everything promotional off.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		EmailNotifications: true,
		MarketingEmails:    false,
		ProfileVisibility:  "private",
		DataSharing:        false,
		LastUpdated:        time.Now(),
	}
}

// User represents a registered account on the marketplace.
type User struct {
	ID               string          `json:"id"`
	Email            string          `json:"email"`
	PasswordHash     string          `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName      string          `json:"display_name"`
	PhoneNumber      string          `json:"phone_number,omitempty"`
	AvatarURL        string          `json:"avatar_url,omitempty"`
	Role             sec.UserRole    `json:"role"`
	TwoFactorEnabled bool            `json:"two_factor_enabled"`
	TwoFactorMethod  TwoFactorMethod `json:"two_factor_method,omitempty"`
	TwoFactorSecret  string          `json:"-"` // TOTP shared secret, authenticator method only.
	PrivacySettings  PrivacySettings `json:"privacy_settings"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// PendingLogin is the server-side half of an unfinished two-factor login.
//
// It lives only in Redis under the opaque pending token handed to the
// client, and is deleted the moment the correct code arrives or the TTL
// lapses. Only the code hash is stored; this entity never crosses the
// HTTP boundary.
type PendingLogin struct {
	UserID string `json:"user_id"`

	// Method captures the enrollment at login time, so changing the
	// account's method mid-flow cannot redirect an open challenge.
	Method TwoFactorMethod `json:"method"`

	// CodeHash is empty for the authenticator method: those codes are
	// derived from the account's shared secret, not delivered.
	CodeHash string `json:"code_hash,omitempty"`
}

// Session represents an established authenticated session.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        *User     `json:"user"`
}

// TwoFactorSetup is the outcome of an enrollment change. Secret and
// OtpauthURL are present only when the authenticator method was enabled:
// this response is the one chance the client has to capture them.
type TwoFactorSetup struct {
	User       *User  `json:"user"`
	Secret     string `json:"secret,omitempty"`
	OtpauthURL string `json:"otpauth_url,omitempty"`
}

// LoginResult is the outcome of a credential presentation: either a full
// session, or a pending token the client must redeem with a code.
type LoginResult struct {
	State        CredentialState `json:"state"`
	PendingToken string          `json:"pending_token,omitempty"`
	Session      *Session        `json:"session,omitempty"`
}

// # Field Identifiers

// Global field names for validation and payload mapping in the auth domain.
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldDisplayName  = "display_name"
	FieldPhoneNumber  = "phone_number"
	FieldPendingToken = "pending_token"
	FieldCode         = "code"
	FieldMethod       = "method"
	FieldMessage      = "message"
)
