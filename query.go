package harvest

import (
	"net/url"
	"strconv"
)

// ListOption filters a list call.
type ListOption func(*listConfig)

type listConfig struct {
	updatedSince any
	clientID     *int64
}

// UpdatedSince restricts a list to records changed since date. date
// accepts the same values as ParseDate.
func UpdatedSince(date any) ListOption {
	return func(c *listConfig) {
		c.updatedSince = date
	}
}

// ForClient restricts a project or task list to one client. Other list
// calls ignore it.
func ForClient(clientID int64) ListOption {
	return func(c *listConfig) {
		c.clientID = &clientID
	}
}

// listPath appends the filters in opts to base. The client filter is
// only encoded when withClient is set.
func listPath(base string, withClient bool, opts []ListOption) (string, error) {
	cfg := &listConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	q := url.Values{}
	if cfg.updatedSince != nil {
		since, err := FormatDate(cfg.updatedSince)
		if err != nil {
			return "", err
		}
		q.Set("updated_since", since)
	}
	if withClient && cfg.clientID != nil {
		q.Set("client", strconv.FormatInt(*cfg.clientID, 10))
	}

	if len(q) == 0 {
		return base, nil
	}
	return base + "?" + q.Encode(), nil
}
