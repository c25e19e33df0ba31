// Package apierrors provides shared error types for the Harvest client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidConfiguration is returned when the client is built with a
	// base URI that lacks a scheme or host.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidDate is returned when a date value cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrMalformedResponse is returned when a successful response body is not valid JSON.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrServiceError matches every HTTP error returned by the API.
	ErrServiceError = errors.New("service error")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when the credentials are rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrThrottled is returned when the API keeps throttling after all retries.
	ErrThrottled = errors.New("throttled")
)

// Kind tags an APIError with its place in the error taxonomy.
type Kind string

const (
	// KindGeneric covers every error status without a dedicated kind.
	KindGeneric Kind = "error"
	// KindNotFound is a 404 response.
	KindNotFound Kind = "not_found"
	// KindUnauthorized is a 401 response.
	KindUnauthorized Kind = "unauthorized"
)

// KindForStatus returns the Kind for an HTTP error status.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized:
		return KindUnauthorized
	default:
		return KindGeneric
	}
}

// APIError represents an HTTP error from the Harvest API. It keeps the
// original status, body and headers of the failed response.
type APIError struct {
	Kind       Kind
	StatusCode int
	Body       []byte
	Header     http.Header
}

// NewAPIError builds an APIError with the kind derived from status.
func NewAPIError(status int, body []byte, header http.Header) *APIError {
	return &APIError{
		Kind:       KindForStatus(status),
		StatusCode: status,
		Body:       body,
		Header:     header,
	}
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(string(e.Body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	if msg != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	if target == ErrServiceError {
		return true
	}
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindUnauthorized:
		return target == ErrUnauthorized
	}
	if e.StatusCode == http.StatusServiceUnavailable {
		return target == ErrThrottled
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
