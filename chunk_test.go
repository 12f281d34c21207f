package scraperbot_test

import (
	"strings"
	"testing"

	"scraperbot"

	"github.com/stretchr/testify/assert"
)

func TestChunkText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		chunkSize int
		want      []string
	}{
		{
			name:      "splits on word boundaries",
			input:     "one two three four five",
			chunkSize: 2,
			want:      []string{"one two", "three four", "five"},
		},
		{
			name:      "single chunk when under size",
			input:     "one two three",
			chunkSize: 10,
			want:      []string{"one two three"},
		},
		{
			name:      "empty input",
			input:     "",
			chunkSize: 5,
			want:      nil,
		},
		{
			name:      "non-positive chunk size",
			input:     "one two",
			chunkSize: 0,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scraperbot.ChunkText(tt.input, tt.chunkSize))
		})
	}
}

func TestChunkText_PreservesAllWords(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("word ", 1203)
	chunks := scraperbot.ChunkText(input, scraperbot.DefaultChunkSize)

	assert.Len(t, chunks, 3)

	total := 0
	for _, chunk := range chunks {
		total += len(strings.Fields(chunk))
	}
	assert.Equal(t, 1203, total)
}
