package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/client/models"
)

// FamilyMembers lists the authenticated user's family records.
func (c *Client) FamilyMembers(ctx context.Context) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	if err := c.doJSON(ctx, http.MethodGet, "/family/", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// FamilyTree returns the authenticated user's family tree.
func (c *Client) FamilyTree(ctx context.Context) ([]models.FamilyNode, error) {
	var tree []models.FamilyNode
	if err := c.doJSON(ctx, http.MethodGet, "/family/tree", nil, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// FamilyTreeOf returns another member's family tree.
func (c *Client) FamilyTreeOf(ctx context.Context, userID int) ([]models.FamilyNode, error) {
	var tree []models.FamilyNode
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/family/tree/%d", userID), nil, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// AddFamilyMember appends a node to the authenticated user's family record.
func (c *Client) AddFamilyMember(ctx context.Context, member *models.FamilyMember) (*models.FamilyMember, error) {
	var created models.FamilyMember
	if err := c.doJSON(ctx, http.MethodPost, "/family/", member, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteFamilyMember removes a node (and its subtree) from the family record.
func (c *Client) DeleteFamilyMember(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/family/%d", id), nil, nil)
}
