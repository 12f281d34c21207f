package mock

import (
	"context"

	"scraperbot"
)

var _ scraperbot.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of scraperbot.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedFn(ctx, texts)
}
