package harvest

import (
	"context"
	"fmt"
)

// Today returns today's time entries together with the projects and tasks
// they can be booked on.
func (c *Client) Today(ctx context.Context) (any, error) {
	return c.get(ctx, "/daily")
}

// GetDay returns the time entries of the day given by date, which accepts
// the same values as ParseDate. The day is addressed by its ordinal in
// the year, e.g. 15 January 2024 becomes /daily/15/2024.
func (c *Client) GetDay(ctx context.Context, date any) (any, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("/daily/%d/%d", day.YearDay(), day.Year()))
}

// GetEntry returns one time entry.
func (c *Client) GetEntry(ctx context.Context, entryID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/daily/show/%d", entryID))
}

// ToggleTimer starts or stops the timer of a time entry.
func (c *Client) ToggleTimer(ctx context.Context, entryID int64) (any, error) {
	return c.get(ctx, fmt.Sprintf("/daily/timer/%d", entryID))
}

// AddEntry creates a time entry. A non-empty "spent_at" field is
// converted to the wire date format; fields itself is left untouched.
func (c *Client) AddEntry(ctx context.Context, fields Fields) (any, error) {
	body := fields.clone()
	if err := formatDateFields(body, "spent_at"); err != nil {
		return nil, err
	}
	return c.post(ctx, "/daily/add", body)
}

// UpdateEntry updates a time entry. The API takes updates as POST.
func (c *Client) UpdateEntry(ctx context.Context, entryID int64, fields Fields) (any, error) {
	return c.post(ctx, fmt.Sprintf("/daily/update/%d", entryID), fields)
}

// DeleteEntry deletes a time entry.
func (c *Client) DeleteEntry(ctx context.Context, entryID int64) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/daily/delete/%d", entryID))
}

// formatDateFields rewrites the named date fields of f in the wire format.
// Missing, nil and empty-string fields are skipped.
func formatDateFields(f Fields, names ...string) error {
	for _, name := range names {
		v, ok := f[name]
		if !ok || v == nil || v == "" {
			continue
		}
		formatted, err := FormatDate(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		f[name] = formatted
	}
	return nil
}
