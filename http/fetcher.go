// Package http provides an HTTP-based implementation of scraperbot.Fetcher
// for retrieving pages during a crawl.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"scraperbot"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. A slow remote
// endpoint otherwise stalls the entire calling request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to fetched sites.
const DefaultUserAgent = "ScrapperBot/1.0"

// Ensure Fetcher implements scraperbot.Fetcher at compile time.
var _ scraperbot.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-2xx responses are errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", scraperbot.Errorf(scraperbot.EINVALID, "building request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", scraperbot.Errorf(scraperbot.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", scraperbot.Errorf(scraperbot.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", scraperbot.Errorf(scraperbot.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}
