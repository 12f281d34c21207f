package rag

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"scraperbot"
)

// DefaultTopK is the number of similar documents retrieved per question.
const DefaultTopK = 3

// Answerer answers natural language questions over the stored documents.
type Answerer struct {
	Embedder  scraperbot.Embedder
	Store     scraperbot.DocumentStore
	Completer scraperbot.Completer
	Logger    *slog.Logger
}

// Answer embeds the question, retrieves the topK most similar documents,
// enriches each with a content snippet, and asks the model to answer the
// question once per retrieved document.
//
// A failing completion call drops only that document from LLMSearch; the
// other completions and the full VectorSimilarity list are still returned.
// Failures before the completion stage abort the whole call.
func (a *Answerer) Answer(ctx context.Context, question string, topK int) (*scraperbot.Answer, error) {
	if question == "" {
		return nil, scraperbot.Errorf(scraperbot.EINVALID, "question required")
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}

	vectors, err := a.Embedder.Embed(ctx, []string{question})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, scraperbot.Errorf(scraperbot.EINTERNAL,
			"expected 1 embedding, got %d", len(vectors))
	}

	matches, err := a.Store.QuerySimilar(ctx, vectors[0], topK)
	if err != nil {
		return nil, err
	}

	enhanced := make([]scraperbot.SnippetMatch, 0, len(matches))
	for _, m := range matches {
		snippet, err := a.Store.Snippet(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		enhanced = append(enhanced, scraperbot.SnippetMatch{
			ID:         m.ID,
			URL:        m.URL,
			Similarity: roundSimilarity(m.Similarity),
			Snippet:    snippet,
		})
	}

	logger.Info("vector similarity results retrieved", "question", question, "matches", len(enhanced))

	answers := make([]scraperbot.SourceAnswer, 0, len(enhanced))
	for _, m := range enhanced {
		content := m.Snippet
		if content == "" {
			content = m.URL
		}

		text, err := a.Completer.Complete(ctx, BuildAnswerPrompt(question, content))
		if err != nil {
			logger.Error("completion failed", "id", m.ID, "url", m.URL, "error", err)
			continue
		}

		answers = append(answers, scraperbot.SourceAnswer{
			ID:         m.ID,
			URL:        m.URL,
			Answer:     text,
			Similarity: m.Similarity,
		})
	}

	return &scraperbot.Answer{
		VectorSimilarity: enhanced,
		LLMSearch:        answers,
	}, nil
}

// BuildAnswerPrompt builds the per-document prompt asking the model to answer
// the question from a single document's snippet (or its URL when the snippet
// is empty).
func BuildAnswerPrompt(question, content string) string {
	return fmt.Sprintf("Based on the following content, answer the question: %s\n\nContent: %s",
		question, content)
}

// roundSimilarity rounds a similarity score to two decimal places for
// display.
func roundSimilarity(v float64) float64 {
	return math.Round(v*100) / 100
}
