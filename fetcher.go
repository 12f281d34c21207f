package scraperbot

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the response body.
	// Non-2xx responses are errors. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
