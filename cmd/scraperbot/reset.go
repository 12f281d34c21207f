package main

import (
	"fmt"

	"scraperbot"
)

// Run executes the reset command.
func (c *ResetCmd) Run(deps *Dependencies) error {
	store, err := deps.OpenStore(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraperbot.ErrorMessage(err))
		return err
	}
	defer store.Close(deps.Ctx)

	if err := store.Reset(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraperbot.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "All embeddings have been cleared.")
	return nil
}
