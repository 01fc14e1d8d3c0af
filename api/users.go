package api

import (
	"context"
	"fmt"

	"github.com/bistrohq/bistro-web/models"
)

type UserClient struct {
	client *Client
}

func (c *UserClient) Get(ctx context.Context, session *Session, userID int64) (*models.SessionUser, error) {
	var user models.SessionUser
	resp, err := c.client.request(ctx, session).
		SetResult(&user).
		Get(fmt.Sprintf("/api/users/%d", userID))
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("fetch user %d: %w", userID, err)
	}
	return &user, nil
}

// Update saves profile fields and returns the fresh record so the
// session mirror can be refreshed in the same turn.
func (c *UserClient) Update(ctx context.Context, session *Session, userID int64, update models.ProfileUpdate) (*models.SessionUser, error) {
	var user models.SessionUser
	resp, err := c.client.request(ctx, session).
		SetBody(update).
		SetResult(&user).
		Put(fmt.Sprintf("/api/users/%d", userID))
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("update user %d: %w", userID, err)
	}
	return &user, nil
}

func (c *UserClient) ChangePassword(ctx context.Context, session *Session, userID int64, change models.PasswordChange) error {
	resp, err := c.client.request(ctx, session).
		SetBody(change).
		Put(fmt.Sprintf("/api/users/%d/password", userID))
	if err := check(resp, err, session); err != nil {
		return fmt.Errorf("change password for user %d: %w", userID, err)
	}
	return nil
}
