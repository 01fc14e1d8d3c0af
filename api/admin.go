package api

import (
	"context"
	"fmt"

	"github.com/bistrohq/bistro-web/models"
)

type AdminClient struct {
	client *Client
}

func (c *AdminClient) Dashboard(ctx context.Context, session *Session) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	resp, err := c.client.request(ctx, session).
		SetResult(&stats).
		Get("/api/admin/dashboard")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("fetch dashboard: %w", err)
	}
	return &stats, nil
}

func (c *AdminClient) ListUsers(ctx context.Context, session *Session) ([]models.SessionUser, error) {
	var users []models.SessionUser
	resp, err := c.client.request(ctx, session).
		SetResult(&users).
		Get("/api/admin/users")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *AdminClient) UpdateUser(ctx context.Context, session *Session, user *models.SessionUser) error {
	resp, err := c.client.request(ctx, session).
		SetBody(user).
		Put(fmt.Sprintf("/api/admin/users/%d", user.ID))
	if err := check(resp, err, session); err != nil {
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return nil
}

func (c *AdminClient) DeleteUser(ctx context.Context, session *Session, userID int64) error {
	resp, err := c.client.request(ctx, session).
		Delete(fmt.Sprintf("/api/admin/users/%d", userID))
	if err := check(resp, err, session); err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	return nil
}
