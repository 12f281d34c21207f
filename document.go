package scraperbot

import "context"

// SnippetLength is the maximum number of content characters returned by
// DocumentStore.Snippet before truncation.
const SnippetLength = 200

// SnippetUnavailable is returned by DocumentStore.Snippet when no document
// exists for the requested id. A missing document is not an error.
const SnippetUnavailable = "Snippet unavailable."

// Document represents a crawled page stored with its vector embedding.
type Document struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Embedding []float32 `json:"embedding,omitempty"`
	Content   string    `json:"content"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if len(d.Embedding) != EmbeddingDimensions {
		return Errorf(EINVALID, "document embedding must have %d dimensions, got %d",
			EmbeddingDimensions, len(d.Embedding))
	}
	return nil
}

// Match represents a single similarity search result.
type Match struct {
	ID         int64   `json:"id"`
	URL        string  `json:"url"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

// DocumentStore persists documents and serves similarity queries.
// Implementations own a single database connection opened for the duration
// of one top-level operation and released with Close.
type DocumentStore interface {
	// Insert stores a new document. If a document with the same URL already
	// exists the call succeeds without writing; the first write wins
	// permanently.
	Insert(ctx context.Context, doc *Document) error

	// QuerySimilar returns up to topK documents ordered by descending cosine
	// similarity to the query embedding. topK <= 0 returns an empty slice.
	QuerySimilar(ctx context.Context, embedding []float32, topK int) ([]Match, error)

	// Snippet returns the first SnippetLength characters of the document's
	// content, with a trailing ellipsis if truncated. Returns
	// SnippetUnavailable if the id does not exist.
	Snippet(ctx context.Context, id int64) (string, error)

	// Reset removes all stored documents.
	Reset(ctx context.Context) error

	// Close releases the connection. Safe to call more than once.
	Close(ctx context.Context) error
}

// TruncateSnippet shortens content to SnippetLength characters, appending an
// ellipsis when content was cut. Content at or under the limit is returned
// unmodified.
func TruncateSnippet(content string) string {
	if len(content) > SnippetLength {
		return content[:SnippetLength] + "..."
	}
	return content
}
