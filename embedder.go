package scraperbot

import "context"

// EmbeddingDimensions is the vector size produced by the embedding model and
// declared on the scraptable embedding column.
const EmbeddingDimensions = 1536

// Embedder generates vector embeddings for texts.
type Embedder interface {
	// Embed returns one EmbeddingDimensions-sized vector per input text, in
	// input order. The call either succeeds for every text or fails as a
	// whole; no partial results are returned.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
