package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// DefaultStatusURL is the public Harvest status endpoint.
const DefaultStatusURL = "http://www.harveststatus.com/api/v2/status.json"

// FetchStatus returns the "status" object of the status page. It never
// fails: any error yields an empty, non-nil map.
func FetchStatus(ctx context.Context, httpClient *http.Client, statusURL string) map[string]any {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if statusURL == "" {
		statusURL = DefaultStatusURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return map[string]any{}
	}
	req.Header.Set(HeaderAccept, ContentTypeJSON)

	resp, err := httpClient.Do(req)
	if err != nil {
		return map[string]any{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return map[string]any{}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[string]any{}
	}

	var page struct {
		Status map[string]any `json:"status"`
	}
	if err := json.Unmarshal(data, &page); err != nil || page.Status == nil {
		return map[string]any{}
	}

	return page.Status
}
