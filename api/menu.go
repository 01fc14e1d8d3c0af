package api

import (
	"context"
	"fmt"

	"github.com/bistrohq/bistro-web/models"
)

type MenuClient struct {
	client *Client
}

func (c *MenuClient) List(ctx context.Context, session *Session, category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	req := c.client.request(ctx, session).SetResult(&items)
	if category != "" {
		req.SetQueryParam("category", category)
	}
	resp, err := req.Get("/api/menu")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (c *MenuClient) Featured(ctx context.Context, session *Session) ([]models.MenuItem, error) {
	var items []models.MenuItem
	resp, err := c.client.request(ctx, session).
		SetResult(&items).
		Get("/api/menu/featured")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("list featured items: %w", err)
	}
	return items, nil
}

func (c *MenuClient) Get(ctx context.Context, session *Session, itemID int64) (*models.MenuItem, error) {
	var item models.MenuItem
	resp, err := c.client.request(ctx, session).
		SetResult(&item).
		Get(fmt.Sprintf("/api/menu/%d", itemID))
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("fetch menu item %d: %w", itemID, err)
	}
	return &item, nil
}

func (c *MenuClient) Create(ctx context.Context, session *Session, item *models.MenuItem) (*models.MenuItem, error) {
	var created models.MenuItem
	resp, err := c.client.request(ctx, session).
		SetBody(item).
		SetResult(&created).
		Post("/api/menu")
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return &created, nil
}

func (c *MenuClient) Update(ctx context.Context, session *Session, item *models.MenuItem) (*models.MenuItem, error) {
	var updated models.MenuItem
	resp, err := c.client.request(ctx, session).
		SetBody(item).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/menu/%d", item.ID))
	if err := check(resp, err, session); err != nil {
		return nil, fmt.Errorf("update menu item %d: %w", item.ID, err)
	}
	return &updated, nil
}

func (c *MenuClient) Delete(ctx context.Context, session *Session, itemID int64) error {
	resp, err := c.client.request(ctx, session).
		Delete(fmt.Sprintf("/api/menu/%d", itemID))
	if err := check(resp, err, session); err != nil {
		return fmt.Errorf("delete menu item %d: %w", itemID, err)
	}
	return nil
}

// SetAvailability flips the sold-out toggle on an item.
func (c *MenuClient) SetAvailability(ctx context.Context, session *Session, itemID int64, available bool) error {
	resp, err := c.client.request(ctx, session).
		SetBody(map[string]bool{"available": available}).
		Put(fmt.Sprintf("/api/menu/items/%d/availability", itemID))
	if err := check(resp, err, session); err != nil {
		return fmt.Errorf("set availability for item %d: %w", itemID, err)
	}
	return nil
}

// SetFeatured flips the home-page feature flag. The backend exposes the
// toggle under both /feature and /featured; the former is primary and
// the latter is tried when it 404s, matching the original client.
func (c *MenuClient) SetFeatured(ctx context.Context, session *Session, itemID int64, featured bool) error {
	body := map[string]bool{"featured": featured}
	resp, err := c.client.request(ctx, session).
		SetBody(body).
		Put(fmt.Sprintf("/api/menu/items/%d/feature", itemID))
	if err != nil {
		return fmt.Errorf("set featured for item %d: %w", itemID, err)
	}
	session.absorb(resp.Cookies())
	if resp.StatusCode() == 404 {
		resp, err = c.client.request(ctx, session).
			SetBody(body).
			Put(fmt.Sprintf("/api/menu/items/%d/featured", itemID))
		if err := check(resp, err, session); err != nil {
			return fmt.Errorf("set featured for item %d: %w", itemID, err)
		}
		return nil
	}
	if resp.IsError() {
		return fmt.Errorf("set featured for item %d: %w", itemID, &Error{StatusCode: resp.StatusCode(), Message: errorMessage(resp)})
	}
	return nil
}
