// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package enquiry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldofalafia/marketplace-api/internal/enquiry"
	"github.com/worldofalafia/marketplace-api/internal/notify"
	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
	"github.com/worldofalafia/marketplace-api/pkg/money"
)

// # Test Doubles

type memoryRepository struct {
	archived []*enquiry.Enquiry
}

func (repo *memoryRepository) Create(_ context.Context, e *enquiry.Enquiry) error {
	repo.archived = append(repo.archived, e)
	return nil
}

func (repo *memoryRepository) List(_ context.Context) ([]enquiry.Enquiry, error) {
	out := []enquiry.Enquiry{}
	for i := len(repo.archived) - 1; i >= 0; i-- {
		out = append(out, *repo.archived[i])
	}
	return out, nil
}

func (repo *memoryRepository) MarkDelivered(_ context.Context, id string) error {
	for _, e := range repo.archived {
		if e.ID == id {
			e.Delivered = true
			return nil
		}
	}
	return apperr.NotFound("Enquiry")
}

type staticItemSource struct{}

func (staticItemSource) Summarize(_ context.Context, itemID string) (*enquiry.ItemSummary, error) {
	if itemID != "laptop-1" {
		return nil, apperr.NotFound("Catalog item")
	}
	return &enquiry.ItemSummary{
		ID:        "laptop-1",
		Title:     "HP EliteBook 840 G5",
		Category:  "electronics",
		UnitPrice: 8500000,
	}, nil
}

type stubUpstream struct {
	err      error
	received []*enquiry.Enquiry
}

func (upstream *stubUpstream) Forward(_ context.Context, e *enquiry.Enquiry) error {
	if upstream.err != nil {
		return upstream.err
	}
	upstream.received = append(upstream.received, e)
	return nil
}

type spyNotifier struct {
	sent []notify.Notification
}

func (spy *spyNotifier) Notify(_ context.Context, notification notify.Notification) {
	spy.sent = append(spy.sent, notification)
}

func submitInput() enquiry.SubmitInput {
	return enquiry.SubmitInput{
		Name:             "Aminata Kamara",
		Email:            "aminata@example.sl",
		Phone:            "+232 76 555123",
		Message:          "Is this still available?",
		PreferredContact: enquiry.ContactWhatsApp,
		Location:         "Freetown",
		Quantity:         2,
		ItemID:           "laptop-1",
	}
}

// # Scenarios

/*
TestSubmit_ArchivesAndForwards verifies the happy path: the listing is
stamped into the archive row, the total derives from quantity, the CRM
receives the enquiry, and the row is marked delivered.
*/
func TestSubmit_ArchivesAndForwards(t *testing.T) {
	repo := &memoryRepository{}
	upstream := &stubUpstream{}
	spy := &spyNotifier{}
	service := enquiry.NewService(repo, staticItemSource{}, upstream, spy)

	archived, err := service.Submit(context.Background(), submitInput())

	require.NoError(t, err)
	assert.Equal(t, "HP EliteBook 840 G5", archived.ItemTitle)
	assert.Equal(t, "electronics", archived.Category)
	assert.Equal(t, money.Amount(8500000), archived.UnitPrice)
	assert.Equal(t, money.Amount(17000000), archived.TotalPrice)
	assert.True(t, archived.Delivered)

	require.Len(t, repo.archived, 1)
	require.Len(t, upstream.received, 1)
	require.NotEmpty(t, spy.sent)
	assert.Equal(t, "Enquiry Sent", spy.sent[len(spy.sent)-1].Title)
}

/*
TestSubmit_UpstreamFailureKeepsArchive verifies the failure semantics: a
CRM outage leaves the enquiry archived with delivered = false, and the
submission still succeeds.
*/
func TestSubmit_UpstreamFailureKeepsArchive(t *testing.T) {
	repo := &memoryRepository{}
	upstream := &stubUpstream{err: apperr.BadGateway("Enquiry service is unreachable", nil)}
	spy := &spyNotifier{}
	service := enquiry.NewService(repo, staticItemSource{}, upstream, spy)

	archived, err := service.Submit(context.Background(), submitInput())

	require.NoError(t, err)
	assert.False(t, archived.Delivered)
	require.Len(t, repo.archived, 1)
	assert.False(t, repo.archived[0].Delivered)
}

/*
TestSubmit_UnknownItem verifies that an enquiry against a missing listing
is rejected before anything is archived.
*/
func TestSubmit_UnknownItem(t *testing.T) {
	repo := &memoryRepository{}
	service := enquiry.NewService(repo, staticItemSource{}, &stubUpstream{}, &spyNotifier{})

	input := submitInput()
	input.ItemID = "ghost"
	_, err := service.Submit(context.Background(), input)

	var appError *apperr.AppError
	require.ErrorAs(t, err, &appError)
	assert.Equal(t, 404, appError.HTTPStatus)
	assert.Empty(t, repo.archived)
}

/*
TestSubmit_QuantityFloor verifies that a non-positive quantity is floored
to 1, mirroring the cart's behavior.
*/
func TestSubmit_QuantityFloor(t *testing.T) {
	repo := &memoryRepository{}
	service := enquiry.NewService(repo, staticItemSource{}, &stubUpstream{}, &spyNotifier{})

	input := submitInput()
	input.Quantity = 0
	archived, err := service.Submit(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 1, archived.Quantity)
	assert.Equal(t, archived.UnitPrice, archived.TotalPrice)
}

/*
TestList_NewestFirst verifies the archive review ordering.
*/
func TestList_NewestFirst(t *testing.T) {
	repo := &memoryRepository{}
	service := enquiry.NewService(repo, staticItemSource{}, &stubUpstream{}, &spyNotifier{})
	ctx := context.Background()

	first, err := service.Submit(ctx, submitInput())
	require.NoError(t, err)
	second, err := service.Submit(ctx, submitInput())
	require.NoError(t, err)

	listed, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}
