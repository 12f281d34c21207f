package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"scraperbot"
	"scraperbot/crawl"
	"scraperbot/httpapi"
)

// Run executes the serve command. It blocks until the process receives an
// interrupt or termination signal, then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := httpapi.NewServer()
	srv.Addr = c.Addr
	srv.Logger = deps.Logger
	srv.OpenStore = deps.OpenStore
	srv.Crawl = func(ctx context.Context, store scraperbot.DocumentStore, baseURL string, maxDepth int) (*crawl.Result, error) {
		return deps.NewCrawler(store).Crawl(ctx, baseURL, maxDepth)
	}
	srv.Ask = func(ctx context.Context, store scraperbot.DocumentStore, question string, topK int) (*scraperbot.Answer, error) {
		return deps.NewAnswerer(store).Answer(ctx, question, topK)
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Open(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		deps.Logger.Info("shutting down")
		return srv.Close()
	})
	return g.Wait()
}
