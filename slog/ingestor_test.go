package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"scraperbot/mock"
	botslog "scraperbot/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingIngestor_Ingest(t *testing.T) {
	t.Parallel()

	t.Run("logs ingest with content size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Ingestor{
			IngestFn: func(ctx context.Context, url, content string) error {
				return nil
			},
		}

		i := botslog.NewLoggingIngestor(inner, logger)
		err := i.Ingest(context.Background(), "https://example.com/page", "some page text")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "page ingest")
		assert.Contains(t, output, "url=https://example.com/page")
		assert.Contains(t, output, "chars=14")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Ingestor{
			IngestFn: func(ctx context.Context, url, content string) error {
				return errors.New("embedding API down")
			},
		}

		i := botslog.NewLoggingIngestor(inner, logger)
		err := i.Ingest(context.Background(), "https://example.com/page", "text")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "page ingest")
		assert.Contains(t, output, "err=\"embedding API down\"")
	})
}
