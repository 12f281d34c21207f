package mock

import (
	"context"

	"scraperbot"
)

var _ scraperbot.Completer = (*Completer)(nil)

// Completer is a mock implementation of scraperbot.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteFn(ctx, prompt)
}
