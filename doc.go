// Package harvest provides a Go client for the Harvest time tracking and
// invoicing API.
//
// Each method maps to one REST endpoint. Responses are decoded into plain
// Go values (maps, slices, strings, float64 and bool) and DELETE calls
// return the bare *Response. Use [Client.Do] to decode into your own types.
//
// Basic usage:
//
//	client, err := harvest.New("https://example.harvestapp.com", "me@example.com", "secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Projects of one client changed since the start of the year
//	projects, err := client.Projects(ctx,
//	    harvest.ForClient(42),
//	    harvest.UpdatedSince("2024-01-01"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Time entries of 15 January 2024
//	day, err := client.GetDay(ctx, "2024-01-15")
//
// Throttled requests (503) are retried after the delay in Retry-After, up
// to 5 times per call. Errors returned by the API match [ErrNotFound],
// [ErrUnauthorized], [ErrThrottled] and [ErrServiceError] with errors.Is,
// and can be inspected as [*APIError] with errors.As.
package harvest
