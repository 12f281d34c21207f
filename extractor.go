package scraperbot

// PageContent holds the text and outgoing links extracted from an HTML page.
type PageContent struct {
	// Text is the visible text of the whole page, before normalization.
	Text string

	// Links are the page's anchor targets resolved to absolute URLs against
	// the page's own URL, in document order.
	Links []string
}

// PageExtractor extracts plain text and links from HTML pages.
type PageExtractor interface {
	// Extract parses raw HTML. The pageURL is used to resolve relative links.
	Extract(html string, pageURL string) (*PageContent, error)
}
