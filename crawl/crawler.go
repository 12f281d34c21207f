// Package crawl provides depth-bounded, same-origin website crawling. Each
// successfully fetched page is handed to the ingestion pipeline; fetch and
// ingestion failures are contained per URL so the crawl continues on other
// links.
package crawl

import (
	"context"
	"log/slog"
	"strings"

	"scraperbot"
)

// Crawler walks a website starting from a base URL, following links whose
// absolute form starts with the base URL string.
type Crawler struct {
	Fetcher   scraperbot.Fetcher
	Extractor scraperbot.PageExtractor
	Ingestor  scraperbot.Ingestor
	Logger    *slog.Logger
}

// Result holds the outcome of a crawl session.
type Result struct {
	// Visited counts URLs accepted for fetching, including ones whose fetch
	// or ingestion later failed.
	Visited int `json:"visited"`

	// Ingested counts pages handed to the ingestion pipeline successfully.
	Ingested int `json:"ingested"`

	// Failed counts per-URL failures (fetch, parse or ingestion).
	Failed int `json:"failed"`
}

// Crawl traverses the site depth-first starting at (baseURL, depth 0).
// URLs deeper than maxDepth (inclusive bound) are skipped. Every URL is
// visited at most once per session, so cyclic link graphs terminate.
//
// The same-origin filter is a literal string-prefix check against baseURL,
// not a parsed-origin comparison: links on any host whose absolute URL shares
// the prefix are followed, and same-host links with a different prefix are
// not.
func (c *Crawler) Crawl(ctx context.Context, baseURL string, maxDepth int) (*Result, error) {
	if baseURL == "" {
		return nil, scraperbot.Errorf(scraperbot.EINVALID, "base URL required")
	}
	if maxDepth < 0 {
		return nil, scraperbot.Errorf(scraperbot.EINVALID, "max depth must be >= 0")
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("starting crawl", "base_url", baseURL, "max_depth", maxDepth)

	frontier := NewFrontier()
	frontier.Push(baseURL, 0)

	var result Result
	for {
		url, depth, ok := frontier.Pop()
		if !ok {
			break
		}

		if err := ctx.Err(); err != nil {
			return &result, err
		}

		if depth > maxDepth {
			continue
		}
		if !frontier.Visit(url) {
			continue
		}
		result.Visited++

		logger.Info("crawling URL", "url", url, "depth", depth)

		html, err := c.Fetcher.Fetch(ctx, url)
		if err != nil {
			result.Failed++
			logger.Error("fetch failed", "url", url, "error", err)
			continue
		}

		content, err := c.Extractor.Extract(html, url)
		if err != nil {
			result.Failed++
			logger.Error("page parse failed", "url", url, "error", err)
			continue
		}

		// An ingestion failure is contained to this page; its links are
		// still followed.
		if err := c.Ingestor.Ingest(ctx, url, content.Text); err != nil {
			result.Failed++
			logger.Error("ingestion failed", "url", url, "error", err)
		} else {
			result.Ingested++
		}

		// Push in reverse so document order pops first (LIFO frontier).
		for i := len(content.Links) - 1; i >= 0; i-- {
			link := content.Links[i]
			if !strings.HasPrefix(link, baseURL) {
				continue
			}
			frontier.Push(link, depth+1)
		}
	}

	logger.Info("crawl finished",
		"base_url", baseURL,
		"visited", result.Visited,
		"ingested", result.Ingested,
		"failed", result.Failed,
	)

	return &result, nil
}
