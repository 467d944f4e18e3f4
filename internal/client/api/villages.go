package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// ListVillages returns the village directory.
func (c *Client) ListVillages(ctx context.Context) ([]models.Village, error) {
	var villages []models.Village
	if err := c.doJSON(ctx, http.MethodGet, "/villages/", nil, &villages); err != nil {
		return nil, err
	}
	return villages, nil
}

// CreateVillage adds a village to the directory. Admin only.
func (c *Client) CreateVillage(ctx context.Context, name, district string) (*models.Village, error) {
	body := map[string]string{"name": name, "district": district}
	var village models.Village
	if err := c.doJSON(ctx, http.MethodPost, "/villages/", body, &village); err != nil {
		return nil, err
	}
	return &village, nil
}

// UpdateVillage renames a village. Admin only.
func (c *Client) UpdateVillage(ctx context.Context, id int, name, district string) (*models.Village, error) {
	body := map[string]string{"name": name, "district": district}
	var village models.Village
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/villages/%d", id), body, &village); err != nil {
		return nil, err
	}
	return &village, nil
}

// DeleteVillage removes a village from the directory. Admin only.
func (c *Client) DeleteVillage(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/villages/%d", id), nil, nil)
}
