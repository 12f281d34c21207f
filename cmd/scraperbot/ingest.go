package main

import (
	"fmt"

	"scraperbot"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	store, err := deps.OpenStore(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraperbot.ErrorMessage(err))
		return err
	}
	defer store.Close(deps.Ctx)

	result, err := deps.NewCrawler(store).Crawl(deps.Ctx, c.URL, c.MaxDepth)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scraperbot.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Visited %d pages: %d ingested, %d failed\n",
		result.Visited, result.Ingested, result.Failed)
	return nil
}
