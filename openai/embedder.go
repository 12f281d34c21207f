// Package openai provides OpenAI-backed implementations of the scraperbot
// embedding and completion interfaces via langchaingo.
package openai

import (
	"context"

	"scraperbot"

	openaillm "github.com/tmc/langchaingo/llms/openai"
)

// EmbeddingModel is the OpenAI model used for document and question vectors.
// It produces scraperbot.EmbeddingDimensions-sized embeddings.
const EmbeddingModel = "text-embedding-ada-002"

// Ensure Embedder implements scraperbot.Embedder at compile time.
var _ scraperbot.Embedder = (*Embedder)(nil)

// Embedder implements scraperbot.Embedder using the OpenAI embeddings API.
type Embedder struct {
	llm *openaillm.LLM
}

// NewEmbedder creates a new Embedder. The API key is required.
func NewEmbedder(apiKey string) (*Embedder, error) {
	if apiKey == "" {
		return nil, scraperbot.Errorf(scraperbot.EINVALID, "OpenAI API key required")
	}

	llm, err := openaillm.New(
		openaillm.WithToken(apiKey),
		openaillm.WithEmbeddingModel(EmbeddingModel),
	)
	if err != nil {
		return nil, scraperbot.Errorf(scraperbot.EINTERNAL, "creating OpenAI client: %v", err)
	}

	return &Embedder{llm: llm}, nil
}

// Embed returns one vector per input text, in input order. The call fails as
// a whole; no partial results are returned.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, scraperbot.Errorf(scraperbot.EINVALID, "at least one text required")
	}

	vectors, err := e.llm.CreateEmbedding(ctx, texts)
	if err != nil {
		return nil, scraperbot.Errorf(scraperbot.EUNAVAILABLE, "generating embeddings: %v", err)
	}

	if len(vectors) != len(texts) {
		return nil, scraperbot.Errorf(scraperbot.EINTERNAL,
			"expected %d embeddings, got %d", len(texts), len(vectors))
	}
	for i, vector := range vectors {
		if len(vector) != scraperbot.EmbeddingDimensions {
			return nil, scraperbot.Errorf(scraperbot.EINTERNAL,
				"embedding %d has %d dimensions, expected %d",
				i, len(vector), scraperbot.EmbeddingDimensions)
		}
	}

	return vectors, nil
}
