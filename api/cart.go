package api

import (
	"context"
	"fmt"

	"github.com/bistrohq/bistro-web/models"
)

// CartClient is the mutation client for the remote cart service. Every
// operation resolves with the full updated snapshot, never a delta; the
// server alone decides when a line disappears at quantity zero. There
// is no retry and no optimistic state: a failed mutation leaves the
// last rendered snapshot untouched.
type CartClient struct {
	client *Client
}

func (c *CartClient) Get(ctx context.Context, session *Session) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	resp, err := c.client.request(ctx, session).
		SetResult(&snapshot).
		Get("/api/cart-service")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	return &snapshot, nil
}

// Add puts one unit of a menu item in the cart.
func (c *CartClient) Add(ctx context.Context, session *Session, menuItemID int64) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	resp, err := c.client.request(ctx, session).
		SetBody(map[string]any{"menuItemId": menuItemID, "quantity": 1}).
		SetResult(&snapshot).
		Post("/api/cart-service")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	return &snapshot, nil
}

// ApplyDelta applies a signed quantity change to one line. A delta of
// zero is a legal no-op round trip and must not change the snapshot.
func (c *CartClient) ApplyDelta(ctx context.Context, session *Session, menuItemID int64, delta int) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	resp, err := c.client.request(ctx, session).
		SetBody(map[string]any{"menuItemId": menuItemID, "quantity": delta}).
		SetResult(&snapshot).
		Put("/api/cart-service")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("update cart quantity: %w", err)
	}
	return &snapshot, nil
}

func (c *CartClient) Remove(ctx context.Context, session *Session, menuItemID int64) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	resp, err := c.client.request(ctx, session).
		SetResult(&snapshot).
		Delete(fmt.Sprintf("/api/cart-service/%d", menuItemID))
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}
	return &snapshot, nil
}

func (c *CartClient) Clear(ctx context.Context, session *Session) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	resp, err := c.client.request(ctx, session).
		SetResult(&snapshot).
		Delete("/api/cart-service")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return &snapshot, nil
}

// Sync re-associates an anonymous cart with the now-authenticated user.
// Called after login, and only when the anonymous cart has lines.
func (c *CartClient) Sync(ctx context.Context, session *Session, items []models.CartLine) error {
	resp, err := c.client.request(ctx, session).
		SetBody(items).
		Put("/api/cart-service/sync")
	if err := check(resp, err, session); err != nil {
		return fmt.Errorf("sync cart: %w", err)
	}
	return nil
}
