package harvest

import (
	"context"
	"fmt"
)

// Projects lists projects. Both ForClient and UpdatedSince are honored.
func (c *Client) Projects(ctx context.Context, opts ...ListOption) (any, error) {
	path, err := listPath("/projects", true, opts)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, path)
}

// GetProject returns one project.
func (c *Client) GetProject(ctx context.Context, projectID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/projects/%d", projectID))
}

// CreateProject creates a project named name.
func (c *Client) CreateProject(ctx context.Context, name string, fields Fields) (any, error) {
	body := fields.clone()
	body["name"] = name
	return c.post(ctx, "/projects", body)
}

// UpdateProject updates a project.
func (c *Client) UpdateProject(ctx context.Context, projectID int64, fields Fields) (any, error) {
	return c.put(ctx, fmt.Sprintf("/projects/%d", projectID), fields)
}

// ToggleProjectActive flips a project between active and archived.
func (c *Client) ToggleProjectActive(ctx context.Context, projectID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/projects/%d/toggle", projectID))
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID int64) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/projects/%d", projectID))
}
