package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// ListEvents returns the active donation events.
func (c *Client) ListEvents(ctx context.Context) ([]models.DonationEvent, error) {
	var events []models.DonationEvent
	if err := c.doJSON(ctx, http.MethodGet, "/events/", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent publishes a new donation event. Admin only.
func (c *Client) CreateEvent(ctx context.Context, event *models.DonationEvent) (*models.DonationEvent, error) {
	var created models.DonationEvent
	if err := c.doJSON(ctx, http.MethodPost, "/events/", event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Donate creates a gateway order for a donation towards an event.
func (c *Client) Donate(ctx context.Context, eventID int, amount float64) (*models.PaymentOrder, error) {
	body := map[string]float64{"amount": amount}
	var order models.PaymentOrder
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/events/%d/donate", eventID), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyDonation reports a completed donation payment for an event.
func (c *Client) VerifyDonation(ctx context.Context, eventID int, proof *models.PaymentProof) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/events/%d/verify-donation", eventID), proof, nil)
}
