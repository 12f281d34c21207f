package slog

import (
	"context"
	"log/slog"
	"time"

	"scraperbot"
)

// Ensure LoggingIngestor implements scraperbot.Ingestor.
var _ scraperbot.Ingestor = (*LoggingIngestor)(nil)

// LoggingIngestor wraps an Ingestor with debug logging.
type LoggingIngestor struct {
	next   scraperbot.Ingestor
	logger *slog.Logger
}

// NewLoggingIngestor creates a new LoggingIngestor.
func NewLoggingIngestor(next scraperbot.Ingestor, logger *slog.Logger) *LoggingIngestor {
	return &LoggingIngestor{next: next, logger: logger}
}

// Ingest delegates to the wrapped ingestor and logs the operation.
func (i *LoggingIngestor) Ingest(ctx context.Context, url, content string) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("page ingest",
			"url", url,
			"chars", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Ingest(ctx, url, content)
}
