package harvest

import (
	"context"
	"fmt"
)

// Tasks lists tasks. Both ForClient and UpdatedSince are honored.
func (c *Client) Tasks(ctx context.Context, opts ...ListOption) (any, error) {
	path, err := listPath("/tasks", true, opts)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, path)
}

// GetTask returns one task.
func (c *Client) GetTask(ctx context.Context, taskID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/tasks/%d", taskID))
}

// CreateTask creates a task named name.
func (c *Client) CreateTask(ctx context.Context, name string, fields Fields) (any, error) {
	body := fields.clone()
	body["name"] = name
	return c.post(ctx, "/tasks", body)
}

// UpdateTask updates a task.
func (c *Client) UpdateTask(ctx context.Context, taskID int64, fields Fields) (any, error) {
	return c.put(ctx, fmt.Sprintf("/tasks/%d", taskID), fields)
}

// ToggleTaskActive flips a task between active and archived.
func (c *Client) ToggleTaskActive(ctx context.Context, taskID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/tasks/%d/toggle", taskID))
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID int64) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/tasks/%d", taskID))
}
