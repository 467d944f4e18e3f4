package api

import (
	"context"
	"net/http"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// MembershipFee returns the current membership fee.
func (c *Client) MembershipFee(ctx context.Context) (*models.MembershipFee, error) {
	var fee models.MembershipFee
	if err := c.doJSON(ctx, http.MethodGet, "/payments/membership/fee", nil, &fee); err != nil {
		return nil, err
	}
	return &fee, nil
}

// CreateMembershipOrder creates a gateway order for the membership fee.
// Only approved users may call this.
func (c *Client) CreateMembershipOrder(ctx context.Context) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	if err := c.doJSON(ctx, http.MethodPost, "/payments/membership/create-order", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyMembershipPayment reports a completed membership payment. On success
// the backend assigns a sabhasad id and upgrades the account to member.
func (c *Client) VerifyMembershipPayment(ctx context.Context, proof *models.PaymentProof) (*models.MembershipReceipt, error) {
	var receipt models.MembershipReceipt
	if err := c.doJSON(ctx, http.MethodPost, "/payments/membership/verify", proof, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// CreateOrder creates a general-purpose payment order.
func (c *Client) CreateOrder(ctx context.Context, amount float64) (*models.PaymentOrder, error) {
	body := map[string]float64{"amount": amount}
	var order models.PaymentOrder
	if err := c.doJSON(ctx, http.MethodPost, "/payments/create-order", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPayment reports a completed general payment.
func (c *Client) VerifyPayment(ctx context.Context, proof *models.PaymentProof) (*models.Payment, error) {
	var payment models.Payment
	if err := c.doJSON(ctx, http.MethodPost, "/payments/verify", proof, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// PaymentHistory returns recorded payments.
func (c *Client) PaymentHistory(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.doJSON(ctx, http.MethodGet, "/payments/history", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// PaymentStats is the aggregate donation/payment summary for the dashboard.
type PaymentStats struct {
	TotalRaised float64 `json:"total_raised"`
	Count       int     `json:"count"`
}

// Stats returns aggregate payment statistics.
func (c *Client) Stats(ctx context.Context) (*PaymentStats, error) {
	var stats PaymentStats
	if err := c.doJSON(ctx, http.MethodGet, "/payments/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
