package harvest

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	authInHeader bool
	httpClient   *http.Client
	timeout      time.Duration
	logger       *zerolog.Logger
	registerer   prometheus.Registerer
	statusURL    string

	// Client-side pacing, disabled when rateLimit is zero.
	rateLimit rate.Limit
	rateBurst int

	throttleSleep func(time.Duration)
}

// Option configures the client.
type Option func(*clientConfig)

// WithAuthInHeader selects how credentials are sent. When true (the
// default) the Basic Authorization header is computed once by New. When
// false the credentials are applied to every request.
func WithAuthInHeader(enabled bool) Option {
	return func(c *clientConfig) {
		c.authInHeader = enabled
	}
}

// WithHTTPClient sets a custom HTTP client. It is also used by Status.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout of the default HTTP client.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger that receives throttling notices.
// Default: the global zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithMetrics registers request and throttling metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}

// WithRateLimit paces outgoing requests to limit per second with the given
// burst. Throttling by the server is handled regardless of this setting.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *clientConfig) {
		c.rateLimit = limit
		c.rateBurst = burst
	}
}

// WithStatusURL overrides the status page endpoint used by Status.
func WithStatusURL(url string) Option {
	return func(c *clientConfig) {
		c.statusURL = url
	}
}

// WithThrottleSleep replaces the function used to wait between throttled
// attempts. Default: time.Sleep
func WithThrottleSleep(sleep func(time.Duration)) Option {
	return func(c *clientConfig) {
		c.throttleSleep = sleep
	}
}
