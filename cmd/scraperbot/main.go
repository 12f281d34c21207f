package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"scraperbot"
	"scraperbot/crawl"
	"scraperbot/goquery"
	bothttp "scraperbot/http"
	"scraperbot/openai"
	"scraperbot/postgres"
	"scraperbot/rag"
	botslog "scraperbot/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Config holds environment-driven process configuration.
type Config struct {
	OpenAIAPIKey string
	Postgres     postgres.Config
	UserAgent    string
	LogLevel     string
}

// Main represents the program.
type Main struct {
	// Configuration. Set before calling Run().
	Config Config
}

// NewMain returns a new instance of Main configured from the environment. A
// .env file in the working directory is loaded first, if present.
func NewMain() *Main {
	_ = godotenv.Load()

	return &Main{
		Config: Config{
			OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
			Postgres: postgres.Config{
				Host:     envDefault("PGVECTOR_HOST", "localhost"),
				Port:     envIntDefault("PGVECTOR_PORT", 5432),
				Database: envDefault("PGVECTOR_DB", "vector_db"),
				User:     envDefault("PGVECTOR_USER", "user"),
				Password: envDefault("PGVECTOR_PASSWORD", "password"),
			},
			UserAgent: envDefault("SCRAPER_USER_AGENT", bothttp.DefaultUserAgent),
			LogLevel:  envDefault("LOG_LEVEL", "INFO"),
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(m.Config.LogLevel),
	}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scraperbot"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scraperbot --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Config.OpenAIAPIKey == "" {
		fmt.Fprintln(stderr, "Hint: Set OPENAI_API_KEY in the environment or a .env file")
		return scraperbot.Errorf(scraperbot.EINVALID, "OPENAI_API_KEY is not set in the environment variables.")
	}

	embedder, err := openai.NewEmbedder(m.Config.OpenAIAPIKey)
	if err != nil {
		return err
	}
	completer, err := openai.NewCompleter(m.Config.OpenAIAPIKey)
	if err != nil {
		return err
	}

	deps.OpenStore = func(ctx context.Context) (scraperbot.DocumentStore, error) {
		db, err := postgres.Open(ctx, m.Config.Postgres)
		if err != nil {
			return nil, err
		}
		return postgres.NewDocumentStore(db), nil
	}
	deps.NewCrawler = func(store scraperbot.DocumentStore) CrawlRunner {
		fetcher := bothttp.NewFetcher(bothttp.WithUserAgent(m.Config.UserAgent))
		return &crawl.Crawler{
			Fetcher:   botslog.NewLoggingFetcher(fetcher, logger),
			Extractor: goquery.NewExtractor(),
			Ingestor: botslog.NewLoggingIngestor(&rag.Ingestor{
				Embedder: embedder,
				Store:    store,
			}, logger),
			Logger: logger,
		}
	}
	deps.NewAnswerer = func(store scraperbot.DocumentStore) QuestionAnswerer {
		return &rag.Answerer{
			Embedder:  embedder,
			Store:     store,
			Completer: completer,
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func logLevel(name string) slog.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
