package harvest

import (
	"github.com/harvestkit/harvest-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidConfiguration is returned when the account URI lacks a
	// scheme or host, or when a Config fails validation.
	ErrInvalidConfiguration = apierrors.ErrInvalidConfiguration

	// ErrInvalidDate is returned when a date argument cannot be parsed.
	ErrInvalidDate = apierrors.ErrInvalidDate

	// ErrMalformedResponse is returned when a successful response is not valid JSON.
	ErrMalformedResponse = apierrors.ErrMalformedResponse

	// ErrServiceError matches any *APIError.
	ErrServiceError = apierrors.ErrServiceError

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrUnauthorized is returned for 401 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrThrottled is returned when the API still answers 503 after every retry.
	ErrThrottled = apierrors.ErrThrottled
)

// APIError represents an HTTP error from the Harvest API. It carries the
// original status code, body and headers.
type APIError = apierrors.APIError

// NetworkError represents a failure to reach the API.
type NetworkError = apierrors.NetworkError

// ErrorKind classifies an APIError.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	KindGeneric      = apierrors.KindGeneric
	KindNotFound     = apierrors.KindNotFound
	KindUnauthorized = apierrors.KindUnauthorized
)
