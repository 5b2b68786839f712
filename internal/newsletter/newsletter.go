// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

// Package newsletter manages the marketing mailing list signup from the
// storefront footer.
package newsletter

import (
	"context"
	"time"
)

// Subscription is one mailing list entry.
type Subscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository abstracts subscription storage.
//
// Create must reject a duplicate email with apperr.Conflict; the unique
// index on the email column enforces it under concurrency.
type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
}

// FieldEmail names the only validated input field.
const FieldEmail = "email"
