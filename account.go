package harvest

import "context"

// WhoAmI returns the account and user the credentials belong to.
func (c *Client) WhoAmI(ctx context.Context) (any, error) {
	return c.get(ctx, "/account/who_am_i")
}
