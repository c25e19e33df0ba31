// Package api provides HTTP client functionality for communicating with the
// Harvest API. It handles authentication, form encoding of request bodies,
// error classification, and retrying of throttled requests.
//
// # Authentication
//
// Credentials are sent as HTTP Basic auth. With [Config.AuthInHeader] the
// Authorization header is computed once in [NewClient]; otherwise it is
// applied to each request. Every request also carries Accept:
// application/json and a browser-like User-Agent, which the API requires.
//
// # Throttling
//
// A 503 response means the API is throttling the account. The client waits
// for the number of seconds in the Retry-After header (15 if missing) and
// repeats the request, at most 5 times per call. The count is kept per
// call, never on the Client.
//
// # Error Handling
//
// Error statuses are returned as *apierrors.APIError, which keeps the
// original status, body and headers. Use errors.Is with
// apierrors.ErrNotFound, apierrors.ErrUnauthorized or
// apierrors.ErrThrottled to classify them.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
