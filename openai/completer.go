package openai

import (
	"context"
	"strings"

	"scraperbot"

	"github.com/tmc/langchaingo/llms"
	openaillm "github.com/tmc/langchaingo/llms/openai"
)

// CompletionModel is the OpenAI chat model used for answer generation.
const CompletionModel = "gpt-3.5-turbo"

// maxCompletionTokens bounds the length of each generated answer.
const maxCompletionTokens = 150

// systemPrompt is the fixed system instruction sent with every completion.
const systemPrompt = "You are a helpful assistant."

// Ensure Completer implements scraperbot.Completer at compile time.
var _ scraperbot.Completer = (*Completer)(nil)

// Completer implements scraperbot.Completer using the OpenAI chat API.
type Completer struct {
	llm *openaillm.LLM
}

// NewCompleter creates a new Completer. The API key is required.
func NewCompleter(apiKey string) (*Completer, error) {
	if apiKey == "" {
		return nil, scraperbot.Errorf(scraperbot.EINVALID, "OpenAI API key required")
	}

	llm, err := openaillm.New(
		openaillm.WithToken(apiKey),
		openaillm.WithModel(CompletionModel),
	)
	if err != nil {
		return nil, scraperbot.Errorf(scraperbot.EINTERNAL, "creating OpenAI client: %v", err)
	}

	return &Completer{llm: llm}, nil
}

// Complete requests a bounded-length completion for the prompt.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", scraperbot.Errorf(scraperbot.EINVALID, "prompt required")
	}

	resp, err := c.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, prompt),
		},
		llms.WithMaxTokens(maxCompletionTokens),
	)
	if err != nil {
		return "", scraperbot.Errorf(scraperbot.EUNAVAILABLE, "requesting completion: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", scraperbot.Errorf(scraperbot.EINTERNAL, "model returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}
