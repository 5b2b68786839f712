// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package newsletter

import (
	"context"

	"github.com/worldofalafia/marketplace-api/internal/notify"
	"github.com/worldofalafia/marketplace-api/pkg/uuidv7"
)

// Service implements the mailing list signup.
type Service struct {
	repository Repository
	notifier   notify.Notifier
}

// NewService constructs a new newsletter [Service].
func NewService(repository Repository, notifier notify.Notifier) *Service {
	return &Service{repository: repository, notifier: notifier}
}

/*
Subscribe adds an email to the mailing list.

Parameters:
  - ctx: context.Context
  - email: string

Returns:
  - *Subscription: Created entry
  - error: Conflict on duplicate signup, or storage failures
*/
func (service *Service) Subscribe(ctx context.Context, email string) (*Subscription, error) {
	subscription := &Subscription{
		ID:    uuidv7.New(),
		Email: email,
	}

	if err := service.repository.Create(ctx, subscription); err != nil {
		return nil, err
	}

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Subscribed",
		Description: "You are now on the World of Alafia mailing list.",
		Severity:    notify.SeveritySuccess,
	})

	return subscription, nil
}
