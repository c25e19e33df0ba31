package harvest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/harvestkit/harvest-go/internal/api"
)

// StatusURL is the default Harvest status page endpoint.
const StatusURL = api.DefaultStatusURL

// Response is returned by DELETE operations in place of a decoded body.
type Response struct {
	StatusCode int
	Header     http.Header
}

// Client is a Harvest API client. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	apiClient  *api.Client
	httpClient *http.Client
	statusURL  string
}

// New creates a client for the account at uri, e.g.
// https://example.harvestapp.com. The uri must have a scheme and a host,
// otherwise New returns an error matching ErrInvalidConfiguration.
func New(uri, email, password string, opts ...Option) (*Client, error) {
	if err := api.ValidateBaseURL(uri); err != nil {
		return nil, err
	}

	cfg := &clientConfig{
		authInHeader: true,
		logger:       &log.Logger,
		statusURL:    StatusURL,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiCfg := api.Config{
		BaseURL:      uri,
		Email:        email,
		Password:     password,
		AuthInHeader: cfg.authInHeader,
		HTTPClient:   cfg.httpClient,
		Timeout:      cfg.timeout,
		Logger:       cfg.logger,
		Throttle:     api.DefaultThrottlePolicy(),
	}

	if cfg.throttleSleep != nil {
		apiCfg.Throttle.Sleep = cfg.throttleSleep
	}

	if cfg.rateLimit > 0 {
		burst := cfg.rateBurst
		if burst < 1 {
			burst = 1
		}
		apiCfg.Limiter = rate.NewLimiter(cfg.rateLimit, burst)
	}

	if cfg.registerer != nil {
		metrics, err := api.NewMetrics(cfg.registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		apiCfg.Metrics = metrics
	}

	apiClient, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, err //coverage:ignore
	}

	return &Client{
		apiClient:  apiClient,
		httpClient: apiClient.HTTPClient(),
		statusURL:  cfg.statusURL,
	}, nil
}

// URI returns the account URI the client talks to.
func (c *Client) URI() string {
	return c.apiClient.BaseURL()
}

// Status returns the "status" object of the Harvest status page. It never
// fails; an unreachable or malformed page yields an empty map.
func (c *Client) Status(ctx context.Context) map[string]any {
	return api.FetchStatus(ctx, c.httpClient, c.statusURL)
}

// Status returns the "status" object of the Harvest status page using the
// default HTTP client. The request is not authenticated and never fails.
func Status(ctx context.Context) map[string]any {
	return api.FetchStatus(ctx, http.DefaultClient, StatusURL)
}

// Do sends an arbitrary request. path is appended to the account URI as
// is and must already carry any query string. Unless method is DELETE, the
// response body is decoded into out when out is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, fields Fields, out any) (*Response, error) {
	body := fields.values()

	if method == http.MethodDelete || out == nil {
		resp, err := c.apiClient.Do(ctx, method, path, body)
		if err != nil {
			return nil, err
		}
		return &Response{StatusCode: resp.StatusCode, Header: resp.Header}, nil
	}

	resp, err := c.apiClient.DoJSON(ctx, method, path, body, out)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header}, nil
}

// request performs a call whose response is decoded into a generic JSON value.
func (c *Client) request(ctx context.Context, method, path string, fields Fields) (any, error) {
	var result any
	if _, err := c.apiClient.DoJSON(ctx, method, path, fields.values(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string) (any, error) {
	return c.request(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, fields Fields) (any, error) {
	return c.request(ctx, http.MethodPost, path, fields)
}

func (c *Client) put(ctx context.Context, path string, fields Fields) (any, error) {
	return c.request(ctx, http.MethodPut, path, fields)
}

func (c *Client) delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}
