package harvest

import (
	"context"
	"fmt"
)

// Contacts lists all client contacts. UpdatedSince is honored.
func (c *Client) Contacts(ctx context.Context, opts ...ListOption) (any, error) {
	path, err := listPath("/contacts", false, opts)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, path)
}

// ClientContacts lists the contacts of one client. UpdatedSince is honored.
func (c *Client) ClientContacts(ctx context.Context, clientID int64, opts ...ListOption) (any, error) {
	path, err := listPath(fmt.Sprintf("/clients/%d/contacts", clientID), false, opts)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, path)
}

// GetContact returns one contact.
func (c *Client) GetContact(ctx context.Context, contactID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/contacts/%d", contactID))
}

// CreateContact creates a contact. The names are sent as "first-name" and
// "last-name" and take precedence over the same keys in fields.
func (c *Client) CreateContact(ctx context.Context, firstName, lastName string, fields Fields) (any, error) {
	body := fields.clone()
	body["first-name"] = firstName
	body["last-name"] = lastName
	return c.post(ctx, "/contacts", body)
}

// UpdateContact updates a contact.
func (c *Client) UpdateContact(ctx context.Context, contactID int64, fields Fields) (any, error) {
	return c.put(ctx, fmt.Sprintf("/contacts/%d", contactID), fields)
}

// DeleteContact deletes a contact.
func (c *Client) DeleteContact(ctx context.Context, contactID int64) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/contacts/%d", contactID))
}
