package main

import (
	"encoding/json"
	"fmt"

	"scraperbot"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	store, err := deps.OpenStore(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraperbot.ErrorMessage(err))
		return err
	}
	defer store.Close(deps.Ctx)

	answer, err := deps.NewAnswerer(store).Answer(deps.Ctx, c.Question, c.TopK)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraperbot.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(answer)
}
