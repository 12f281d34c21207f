package scraperbot

import "context"

// Ingestor persists one page's content as an embedded document.
type Ingestor interface {
	// Ingest normalizes content, generates its embedding and stores the
	// resulting document under url. Ingesting a URL that was stored before
	// is a no-op at the storage layer.
	Ingest(ctx context.Context, url string, content string) error
}
