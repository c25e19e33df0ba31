package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/harvestkit/harvest-go/internal/apierrors"
)

// Default configuration values.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "Mozilla/5.0"
)

// Header names sent on every request.
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
	HeaderRequestID     = "X-Request-ID"
	HeaderRetryAfter    = "Retry-After"

	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

// Config holds the configuration for creating a new API client.
type Config struct {
	// BaseURL is the account URI, e.g. https://example.harvestapp.com.
	// It must carry a scheme and a host.
	BaseURL string

	// Email and Password are the account credentials.
	Email    string
	Password string

	// AuthInHeader computes the Basic Authorization header once at
	// construction. When false, credentials are applied per request.
	AuthInHeader bool

	// HTTPClient is an optional custom HTTP client.
	// If nil, a default client with Timeout is created.
	HTTPClient *http.Client

	// Timeout is the HTTP request timeout. Default: 30s.
	Timeout time.Duration

	// Logger receives the throttling notices. Default: disabled.
	Logger *zerolog.Logger

	// Limiter paces outgoing attempts when set.
	Limiter *rate.Limiter

	// Metrics records request outcomes when set.
	Metrics *Metrics

	// Throttle overrides the 503 retry policy. Default: DefaultThrottlePolicy().
	Throttle *ThrottlePolicy
}

// Response is a successful HTTP response with its body already read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client is the HTTP API client. It is immutable after construction and
// safe for concurrent use.
type Client struct {
	baseURL      string
	email        string
	password     string
	authInHeader bool
	headers      http.Header
	httpClient   *http.Client
	logger       zerolog.Logger
	limiter      *rate.Limiter
	metrics      *Metrics
	throttle     *ThrottlePolicy
}

// NewClient creates a new API client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := ValidateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	throttle := cfg.Throttle
	if throttle == nil {
		throttle = DefaultThrottlePolicy()
	}

	headers := http.Header{}
	headers.Set(HeaderAccept, ContentTypeJSON)
	headers.Set(HeaderUserAgent, DefaultUserAgent)
	if cfg.AuthInHeader {
		headers.Set(HeaderAuthorization, BasicAuthorization(cfg.Email, cfg.Password))
	}

	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		email:        cfg.Email,
		password:     cfg.Password,
		authInHeader: cfg.AuthInHeader,
		headers:      headers,
		httpClient:   httpClient,
		logger:       logger,
		limiter:      cfg.Limiter,
		metrics:      cfg.Metrics,
		throttle:     throttle,
	}, nil
}

// ValidateBaseURL reports whether raw parses into a URI with both a scheme
// and a host.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: invalid uri %q: %w", apierrors.ErrInvalidConfiguration, raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: invalid uri %q", apierrors.ErrInvalidConfiguration, raw)
	}
	return nil
}

// BasicAuthorization returns the value of a Basic Authorization header.
func BasicAuthorization(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Do performs one logical API call. A 503 response is retried after the
// delay announced in Retry-After until the throttle policy gives up; the
// retry count lives in this call only. Any other status of 400 or above
// is returned as an *apierrors.APIError.
func (c *Client) Do(ctx context.Context, method, path string, body url.Values) (*Response, error) {
	requestID := uuid.NewString()
	throttled := 0

	for attempt := 1; ; attempt++ {
		resp, err := c.send(ctx, method, path, body, requestID, attempt)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < http.StatusBadRequest {
			return resp, nil
		}

		apiErr := apierrors.NewAPIError(resp.StatusCode, resp.Body, resp.Header)
		if resp.StatusCode != http.StatusServiceUnavailable {
			return nil, apiErr
		}

		throttled++
		if !c.throttle.ShouldRetry(throttled) {
			return nil, apiErr
		}

		delay := c.throttle.Delay(resp.Header)
		c.logger.Warn().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Dur("retry_after", delay).
			Int("attempt", throttled).
			Msgf("Harvest is throttling requests, retrying in %d seconds...", int(delay.Seconds()))
		c.metrics.observeThrottle()
		c.throttle.Wait(delay)
	}
}

// DoJSON performs the call like Do and decodes the response body into result.
func (c *Client) DoJSON(ctx context.Context, method, path string, body url.Values, result any) (*Response, error) {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resp.Body, result); err != nil {
		return resp, fmt.Errorf("%w: %w", apierrors.ErrMalformedResponse, err)
	}

	return resp, nil
}

func (c *Client) send(
	ctx context.Context,
	method string,
	path string,
	body url.Values,
	requestID string,
	attempt int,
) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = strings.NewReader(body.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}
	if body != nil {
		req.Header.Set(HeaderContentType, ContentTypeFormURLEncoded)
	}
	req.Header.Set(HeaderRequestID, requestID)
	if !c.authInHeader {
		req.SetBasicAuth(c.email, c.password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observeRequest(method, 0, time.Since(start))
		return nil, &apierrors.NetworkError{Err: err, URL: req.URL.String(), Attempt: attempt}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observeRequest(method, 0, time.Since(start))
		return nil, &apierrors.NetworkError{Err: err, URL: req.URL.String(), Attempt: attempt}
	}
	c.metrics.observeRequest(method, resp.StatusCode, time.Since(start))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
