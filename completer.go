package scraperbot

import "context"

// Completer requests a bounded-length completion from a language model.
type Completer interface {
	// Complete sends the prompt to the model and returns the generated text
	// with surrounding whitespace trimmed.
	Complete(ctx context.Context, prompt string) (string, error)
}
