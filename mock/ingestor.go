package mock

import (
	"context"

	"scraperbot"
)

var _ scraperbot.Ingestor = (*Ingestor)(nil)

// Ingestor is a mock implementation of scraperbot.Ingestor.
type Ingestor struct {
	IngestFn func(ctx context.Context, url string, content string) error
}

func (i *Ingestor) Ingest(ctx context.Context, url string, content string) error {
	return i.IngestFn(ctx, url, content)
}
