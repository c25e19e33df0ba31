package harvest

import (
	"context"
	"fmt"
)

// Clients lists all clients. UpdatedSince is honored.
func (c *Client) Clients(ctx context.Context, opts ...ListOption) (any, error) {
	path, err := listPath("/clients", false, opts)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, path)
}

// GetClient returns one client.
func (c *Client) GetClient(ctx context.Context, clientID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/clients/%d", clientID))
}

// CreateClient creates a client named name.
func (c *Client) CreateClient(ctx context.Context, name string, fields Fields) (any, error) {
	body := fields.clone()
	body["name"] = name
	return c.post(ctx, "/clients", body)
}

// UpdateClient updates a client.
func (c *Client) UpdateClient(ctx context.Context, clientID int64, fields Fields) (any, error) {
	return c.put(ctx, fmt.Sprintf("/clients/%d", clientID), fields)
}

// ToggleClientActive flips a client between active and archived.
func (c *Client) ToggleClientActive(ctx context.Context, clientID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/clients/%d/toggle", clientID))
}

// DeleteClient deletes a client.
func (c *Client) DeleteClient(ctx context.Context, clientID int64) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/clients/%d", clientID))
}
