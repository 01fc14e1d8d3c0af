package api

import (
	"context"
	"fmt"

	"github.com/bistrohq/bistro-web/models"
)

type AuthClient struct {
	client *Client
}

// Login authenticates against the auth service. The returned user is
// mirrored into the local session cookie by the caller; the backend's
// own session cookie rides back through the Session.
func (c *AuthClient) Login(ctx context.Context, session *Session, data models.LoginData) (*models.SessionUser, error) {
	var result struct {
		User models.SessionUser `json:"user"`
	}
	resp, err := c.client.request(ctx, session).
		SetBody(data).
		SetResult(&result).
		Post("/api/auth/login")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &result.User, nil
}

func (c *AuthClient) Register(ctx context.Context, session *Session, data models.RegisterData) error {
	resp, err := c.client.request(ctx, session).
		SetBody(data).
		Post("/api/auth/register")
	if err := check(resp, err, session); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (c *AuthClient) Logout(ctx context.Context, session *Session) error {
	resp, err := c.client.request(ctx, session).
		Post("/api/auth/logout")
	if err := check(resp, err, session); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Check re-validates the server session, used to refresh the local
// mirror on page load.
func (c *AuthClient) Check(ctx context.Context, session *Session) (*models.SessionUser, error) {
	var result struct {
		User models.SessionUser `json:"user"`
	}
	resp, err := c.client.request(ctx, session).
		SetResult(&result).
		Get("/api/auth/check")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("auth check: %w", err)
	}
	return &result.User, nil
}
