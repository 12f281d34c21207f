package mock

import (
	"context"

	"scraperbot"
)

var _ scraperbot.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of scraperbot.DocumentStore.
type DocumentStore struct {
	InsertFn       func(ctx context.Context, doc *scraperbot.Document) error
	QuerySimilarFn func(ctx context.Context, embedding []float32, topK int) ([]scraperbot.Match, error)
	SnippetFn      func(ctx context.Context, id int64) (string, error)
	ResetFn        func(ctx context.Context) error
	CloseFn        func(ctx context.Context) error
}

func (s *DocumentStore) Insert(ctx context.Context, doc *scraperbot.Document) error {
	return s.InsertFn(ctx, doc)
}

func (s *DocumentStore) QuerySimilar(ctx context.Context, embedding []float32, topK int) ([]scraperbot.Match, error) {
	return s.QuerySimilarFn(ctx, embedding, topK)
}

func (s *DocumentStore) Snippet(ctx context.Context, id int64) (string, error) {
	return s.SnippetFn(ctx, id)
}

func (s *DocumentStore) Reset(ctx context.Context) error {
	return s.ResetFn(ctx)
}

func (s *DocumentStore) Close(ctx context.Context) error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn(ctx)
}
