package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Throttle defaults.
const (
	DefaultMaxThrottleRetries = 5
	DefaultRetryAfter         = 15 * time.Second
)

// ThrottlePolicy configures how 503 responses are retried.
type ThrottlePolicy struct {
	// MaxRetries is the number of retries after the first throttled attempt.
	MaxRetries int
	// DefaultDelay is used when Retry-After is absent or not a number of seconds.
	DefaultDelay time.Duration
	// Sleep blocks for the given duration. Default: time.Sleep.
	Sleep func(time.Duration)
}

// DefaultThrottlePolicy returns the default throttle policy: up to 5
// retries, 15 seconds when the server does not say otherwise.
func DefaultThrottlePolicy() *ThrottlePolicy {
	return &ThrottlePolicy{
		MaxRetries:   DefaultMaxThrottleRetries,
		DefaultDelay: DefaultRetryAfter,
		Sleep:        time.Sleep,
	}
}

// ShouldRetry reports whether the call may be repeated after its
// throttled-th 503 response.
func (p *ThrottlePolicy) ShouldRetry(throttled int) bool {
	return throttled <= p.MaxRetries
}

// Delay returns the wait announced by the Retry-After header.
func (p *ThrottlePolicy) Delay(header http.Header) time.Duration {
	raw := strings.TrimSpace(header.Get(HeaderRetryAfter))
	if raw == "" {
		return p.DefaultDelay
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return p.DefaultDelay
	}
	return time.Duration(seconds) * time.Second
}

// Wait blocks the calling goroutine for d. It does not watch any context:
// a throttled call runs to completion or to its retry ceiling.
func (p *ThrottlePolicy) Wait(d time.Duration) {
	if p.Sleep == nil {
		time.Sleep(d)
		return
	}
	p.Sleep(d)
}
