package main

import (
	"context"
	"io"
	"log/slog"

	"scraperbot"
	"scraperbot/crawl"
)

// CrawlRunner runs a crawl-and-ingest session.
type CrawlRunner interface {
	Crawl(ctx context.Context, baseURL string, maxDepth int) (*crawl.Result, error)
}

// QuestionAnswerer answers a question against the stored corpus.
type QuestionAnswerer interface {
	Answer(ctx context.Context, question string, topK int) (*scraperbot.Answer, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// OpenStore opens a store connection; the command owns closing it.
	OpenStore func(ctx context.Context) (scraperbot.DocumentStore, error)

	// NewCrawler and NewAnswerer build the pipelines over an open store.
	NewCrawler  func(store scraperbot.DocumentStore) CrawlRunner
	NewAnswerer func(store scraperbot.DocumentStore) QuestionAnswerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Start the HTTP API server"`
	Ingest IngestCmd `cmd:"" help:"Crawl a website and store page embeddings"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about the stored content"`
	Reset  ResetCmd  `cmd:"" help:"Delete all stored embeddings"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" env:"SCRAPERBOT_ADDR" help:"HTTP listen address"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	URL      string `arg:"" help:"Base URL to crawl"`
	MaxDepth int    `default:"1" help:"Maximum link depth to follow"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the stored content"`
	TopK     int    `default:"3" help:"Number of similar documents to retrieve"`
}

// ResetCmd is the "reset" subcommand.
type ResetCmd struct{}
