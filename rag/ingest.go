// Package rag implements the ingestion and question-answering pipelines:
// normalize, embed and store on the way in; embed, search, enrich and
// complete on the way out.
package rag

import (
	"context"

	"scraperbot"
)

// Compile-time interface verification.
var _ scraperbot.Ingestor = (*Ingestor)(nil)

// Ingestor persists one page's content as an embedded document.
type Ingestor struct {
	Embedder scraperbot.Embedder
	Store    scraperbot.DocumentStore
}

// Ingest normalizes content, embeds the cleaned text as a single-item batch
// and inserts the resulting document. Any step failing aborts this page's
// ingestion; the caller decides whether the enclosing crawl continues.
func (i *Ingestor) Ingest(ctx context.Context, url string, content string) error {
	if url == "" {
		return scraperbot.Errorf(scraperbot.EINVALID, "URL required")
	}

	cleaned := scraperbot.NormalizeText(content)

	vectors, err := i.Embedder.Embed(ctx, []string{cleaned})
	if err != nil {
		return err
	}
	if len(vectors) != 1 {
		return scraperbot.Errorf(scraperbot.EINTERNAL,
			"expected 1 embedding, got %d", len(vectors))
	}

	return i.Store.Insert(ctx, &scraperbot.Document{
		URL:       url,
		Embedding: vectors[0],
		Content:   cleaned,
	})
}
