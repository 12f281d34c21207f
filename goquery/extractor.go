// Package goquery provides a goquery-based implementation of
// scraperbot.PageExtractor.
package goquery

import (
	"net/url"
	"strings"

	"scraperbot"

	"github.com/PuerkitoBio/goquery"
)

// Ensure Extractor implements scraperbot.PageExtractor at compile time.
var _ scraperbot.PageExtractor = (*Extractor)(nil)

// Extractor extracts page text and anchor links from raw HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML and returns the page's visible text plus all
// anchor targets resolved against pageURL, in document order. Anchors whose
// href cannot be parsed are skipped; non-HTTP schemes (javascript:, mailto:)
// survive resolution but are filtered later by the crawler's origin check.
func (e *Extractor) Extract(html string, pageURL string) (*scraperbot.PageContent, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, scraperbot.Errorf(scraperbot.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scraperbot.Errorf(scraperbot.EINVALID, "failed to parse HTML: %v", err)
	}

	// Script and style text is not page content.
	doc.Find("script, style, noscript").Remove()

	content := &scraperbot.PageContent{
		Text: doc.Text(),
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		content.Links = append(content.Links, base.ResolveReference(ref).String())
	})

	return content, nil
}
