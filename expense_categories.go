package harvest

import (
	"context"
	"fmt"
)

// ExpenseCategories lists all expense categories.
func (c *Client) ExpenseCategories(ctx context.Context) (any, error) {
	return c.get(ctx, "/expense_categories")
}

// GetExpenseCategory returns one expense category.
func (c *Client) GetExpenseCategory(ctx context.Context, categoryID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/expense_categories/%d", categoryID))
}

// CreateExpenseCategory creates an expense category.
func (c *Client) CreateExpenseCategory(ctx context.Context, fields Fields) (any, error) {
	return c.post(ctx, "/expense_categories", fields)
}

// UpdateExpenseCategory updates an expense category.
func (c *Client) UpdateExpenseCategory(ctx context.Context, categoryID int64, fields Fields) (any, error) {
	return c.put(ctx, fmt.Sprintf("/expense_categories/%d", categoryID), fields)
}

// ToggleExpenseCategoryActive flips an expense category between active and
// deactivated.
func (c *Client) ToggleExpenseCategoryActive(ctx context.Context, categoryID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/expense_categories/%d/toggle", categoryID))
}

// DeleteExpenseCategory deletes an expense category.
func (c *Client) DeleteExpenseCategory(ctx context.Context, categoryID int64) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/expense_categories/%d", categoryID))
}
