package postgres

import (
	"context"
	"errors"
	"fmt"

	"scraperbot"

	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"
)

// Compile-time interface verification.
var _ scraperbot.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements scraperbot.DocumentStore using Postgres with the
// pgvector extension.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Insert stores a new document. An existing row with the same URL is left
// untouched; the insert is then a silent no-op.
func (s *DocumentStore) Insert(ctx context.Context, doc *scraperbot.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	_, err := s.db.conn.Exec(ctx, `
		INSERT INTO scraptable (url, embedding, content)
		VALUES ($1, $2, $3)
		ON CONFLICT (url) DO NOTHING
	`, doc.URL, pgvector.NewVector(doc.Embedding), doc.Content)
	if err != nil {
		return fmt.Errorf("inserting document for %s: %w", doc.URL, err)
	}

	return nil
}

// QuerySimilar returns up to topK documents ordered by descending cosine
// similarity to the query embedding.
func (s *DocumentStore) QuerySimilar(ctx context.Context, embedding []float32, topK int) ([]scraperbot.Match, error) {
	if topK <= 0 {
		return []scraperbot.Match{}, nil
	}

	rows, err := s.db.conn.Query(ctx, `
		SELECT id, url, content, 1 - (embedding <=> $1) AS similarity
		FROM scraptable
		ORDER BY similarity DESC
		LIMIT $2
	`, pgvector.NewVector(embedding), topK)
	if err != nil {
		return nil, fmt.Errorf("querying similar documents: %w", err)
	}
	defer rows.Close()

	matches := []scraperbot.Match{}
	for rows.Next() {
		var m scraperbot.Match
		if err := rows.Scan(&m.ID, &m.URL, &m.Content, &m.Similarity); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// Snippet returns the truncated content for a document id, or the
// SnippetUnavailable sentinel when the id does not exist.
func (s *DocumentStore) Snippet(ctx context.Context, id int64) (string, error) {
	var content string
	err := s.db.conn.QueryRow(ctx,
		`SELECT content FROM scraptable WHERE id = $1`, id).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return scraperbot.SnippetUnavailable, nil
	}
	if err != nil {
		return "", fmt.Errorf("fetching snippet for id %d: %w", id, err)
	}

	return scraperbot.TruncateSnippet(content), nil
}

// Reset removes all stored documents.
func (s *DocumentStore) Reset(ctx context.Context) error {
	if _, err := s.db.conn.Exec(ctx, `TRUNCATE TABLE scraptable`); err != nil {
		return fmt.Errorf("truncating scraptable: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *DocumentStore) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}
