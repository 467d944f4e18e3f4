package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// ListMembers returns the member directory, optionally filtered by village.
func (c *Client) ListMembers(ctx context.Context, villageID *int) ([]models.User, error) {
	path := "/members/"
	if villageID != nil {
		q := url.Values{}
		q.Set("village_id", strconv.Itoa(*villageID))
		path += "?" + q.Encode()
	}
	var members []models.User
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetMember returns a single directory entry.
func (c *Client) GetMember(ctx context.Context, id int) (*models.User, error) {
	var member models.User
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/members/%d", id), nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// PendingMembers returns applications awaiting admin review.
func (c *Client) PendingMembers(ctx context.Context) ([]models.User, error) {
	var members []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/members/pending", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Apply submits the membership application for the authenticated user.
func (c *Client) Apply(ctx context.Context, app *models.MembershipApplication) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPut, "/members/apply", app, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ApproveMember approves a pending application. Admin only.
func (c *Client) ApproveMember(ctx context.Context, id int, comment string) (*models.User, error) {
	body := map[string]string{"comment": comment}
	var user models.User
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/members/%d/approve", id), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RejectMember rejects a pending application. Admin only.
func (c *Client) RejectMember(ctx context.Context, id int, comment string) error {
	body := map[string]string{"comment": comment}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/members/%d/reject", id), body, nil)
}
