// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package enquiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/worldofalafia/marketplace-api/internal/notify"
	"github.com/worldofalafia/marketplace-api/internal/platform/ctxutil"
	"github.com/worldofalafia/marketplace-api/pkg/money"
	"github.com/worldofalafia/marketplace-api/pkg/uuidv7"
)

// # Contracts & Types

// ItemSummary is the slice of a catalog listing an enquiry stamps into
// its archive row.
type ItemSummary struct {
	ID        string
	Title     string
	Category  string
	UnitPrice money.Amount
}

// ItemSource resolves the listing an enquiry refers to.
type ItemSource interface {
	Summarize(ctx context.Context, itemID string) (*ItemSummary, error)
}

// Service implements the enquiry submission and review use cases.
//
// # Failure Semantics
//
// Archive first, forward second. A failed forward leaves the enquiry in
// the archive with delivered = false; the sales team works from the
// archive, so the shopper's submission is never lost to a CRM outage.
type Service struct {
	repository Repository
	items      ItemSource
	upstream   Upstream
	notifier   notify.Notifier
}

// NewService constructs a new enquiry [Service] with its dependencies.
func NewService(repository Repository, items ItemSource, upstream Upstream, notifier notify.Notifier) *Service {
	return &Service{
		repository: repository,
		items:      items,
		upstream:   upstream,
		notifier:   notifier,
	}
}

// # Submission Flow

// SubmitInput holds one enquiry form submission.
type SubmitInput struct {
	Name             string
	Email            string
	Phone            string
	Message          string
	PreferredContact string
	PreferredDate    string
	Location         string
	Quantity         int
	ItemID           string
}

/*
Submit archives an enquiry and forwards it to the CRM.

Description: The listing is resolved and its title, category, and price are
stamped into the row. The forward runs after the archive write; its outcome
only affects the delivered flag, never the submission result.

Parameters:
  - ctx: context.Context
  - input: SubmitInput

Returns:
  - *Enquiry: Archived enquiry with its delivery outcome
  - error: NotFound (unknown item) or archive failures
*/
func (service *Service) Submit(ctx context.Context, input SubmitInput) (*Enquiry, error) {

	// ── 1. Resolve the listing ──
	summary, err := service.items.Summarize(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	// ── 2. Archive locally. This write is the submission ──
	enquiry := &Enquiry{
		ID:               uuidv7.New(),
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Message:          input.Message,
		PreferredContact: input.PreferredContact,
		PreferredDate:    input.PreferredDate,
		Location:         input.Location,
		Quantity:         quantity,
		ItemID:           summary.ID,
		ItemTitle:        summary.Title,
		Category:         summary.Category,
		UnitPrice:        summary.UnitPrice,
		TotalPrice:       summary.UnitPrice * money.Amount(quantity),
		Delivered:        false,
	}

	if err := service.repository.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	// ── 3. Forward to the CRM, best effort ──
	if err := service.upstream.Forward(ctx, enquiry); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "enquiry_forward_failed",
			slog.String("enquiry_id", enquiry.ID),
			slog.Any("error", err),
		)

		service.notifier.Notify(ctx, notify.Notification{
			Title:       "Enquiry Received",
			Description: "We saved your enquiry and will follow up shortly.",
			Severity:    notify.SeverityInfo,
		})

		return enquiry, nil
	}

	// ── 4. Record the delivery on the archived row ──
	if err := service.repository.MarkDelivered(ctx, enquiry.ID); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "enquiry_mark_delivered_failed",
			slog.String("enquiry_id", enquiry.ID),
			slog.Any("error", err),
		)
	} else {
		enquiry.Delivered = true
	}

	service.notifier.Notify(ctx, notify.Notification{
		Title:       "Enquiry Sent",
		Description: fmt.Sprintf("Your enquiry about %s has been sent to our sales team.", enquiry.ItemTitle),
		Severity:    notify.SeveritySuccess,
	})

	return enquiry, nil
}

/*
List returns all archived enquiries for the sales team, newest first.

Parameters:
  - ctx: context.Context

Returns:
  - []Enquiry: Archived enquiries
  - error: Storage failures
*/
func (service *Service) List(ctx context.Context) ([]Enquiry, error) {
	return service.repository.List(ctx)
}
