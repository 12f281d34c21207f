package mock

import "scraperbot"

var _ scraperbot.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of scraperbot.PageExtractor.
type PageExtractor struct {
	ExtractFn func(html string, pageURL string) (*scraperbot.PageContent, error)
}

func (e *PageExtractor) Extract(html string, pageURL string) (*scraperbot.PageContent, error) {
	return e.ExtractFn(html, pageURL)
}
