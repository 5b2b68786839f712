// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

package enquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/worldofalafia/marketplace-api/internal/platform/apperr"
)

// Upstream forwards an enquiry to the external CRM.
type Upstream interface {
	Forward(ctx context.Context, enquiry *Enquiry) error
}

// # HTTP Upstream

// upstreamTimeout caps one forward attempt. The enquiry is already
// archived when the forward runs, so a slow CRM only delays delivery.
const upstreamTimeout = 10 * time.Second

// HTTPUpstream implements [Upstream] against the CRM's REST intake.
type HTTPUpstream struct {
	baseURL string
	client  *http.Client
}

// NewHTTPUpstream creates an [HTTPUpstream] for the given CRM base URL.
func NewHTTPUpstream(baseURL string) *HTTPUpstream {
	return &HTTPUpstream{
		baseURL: baseURL,
		client:  &http.Client{Timeout: upstreamTimeout},
	}
}

// upstreamPayload is the CRM intake contract.
type upstreamPayload struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Message          string `json:"message,omitempty"`
	PreferredContact string `json:"preferred_contact"`
	PreferredDate    string `json:"preferred_date,omitempty"`
	Location         string `json:"location,omitempty"`
	Quantity         int    `json:"quantity"`
	ItemID           string `json:"item_id"`
	ItemTitle        string `json:"item_title"`
	Category         string `json:"category"`
	UnitPrice        int64  `json:"unit_price"`
	TotalPrice       int64  `json:"total_price"`
	Source           string `json:"source"`
	Timestamp        string `json:"timestamp"`
}

// upstreamResponse is the CRM acknowledgment envelope.
type upstreamResponse struct {
	Success bool `json:"success"`
}

/*
Forward POSTs the enquiry to the CRM intake endpoint.

Description: The CRM signals acceptance both through the HTTP status and a
success flag in the body; either failing counts as an undelivered forward.

Parameters:
  - ctx: context.Context
  - enquiry: *Enquiry

Returns:
  - error: apperr.BadGateway on any transport or acknowledgment failure
*/
func (upstream *HTTPUpstream) Forward(ctx context.Context, enquiry *Enquiry) error {
	payload := upstreamPayload{
		Name:             enquiry.Name,
		Email:            enquiry.Email,
		Phone:            enquiry.Phone,
		Message:          enquiry.Message,
		PreferredContact: enquiry.PreferredContact,
		PreferredDate:    enquiry.PreferredDate,
		Location:         enquiry.Location,
		Quantity:         enquiry.Quantity,
		ItemID:           enquiry.ItemID,
		ItemTitle:        enquiry.ItemTitle,
		Category:         enquiry.Category,
		UnitPrice:        int64(enquiry.UnitPrice),
		TotalPrice:       int64(enquiry.TotalPrice),
		Source:           "api",
		Timestamp:        enquiry.CreatedAt.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("enquiry_upstream_encode_failed: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, upstream.baseURL+"/api/enquiries", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("enquiry_upstream_request_failed: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := upstream.client.Do(request)
	if err != nil {
		return apperr.BadGateway("Enquiry service is unreachable", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return apperr.BadGateway("Enquiry service rejected the submission",
			fmt.Errorf("enquiry_upstream_status_%d", response.StatusCode))
	}

	var acknowledgment upstreamResponse
	if err := json.NewDecoder(response.Body).Decode(&acknowledgment); err != nil {
		return apperr.BadGateway("Enquiry service returned an unreadable response", err)
	}
	if !acknowledgment.Success {
		return apperr.BadGateway("Enquiry service did not accept the submission", nil)
	}

	return nil
}

// # Noop Upstream

// NoopUpstream is used when no CRM endpoint is configured: enquiries stay
// in the local archive and are reported as delivered.
type NoopUpstream struct{}

// Forward implements [Upstream] as an immediate success.
func (NoopUpstream) Forward(context.Context, *Enquiry) error {
	return nil
}
