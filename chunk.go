package scraperbot

import "strings"

// DefaultChunkSize is the word count used when splitting text into chunks.
const DefaultChunkSize = 500

// ChunkText splits text into chunks of at most chunkSize words. The last
// chunk may be shorter. Empty input yields no chunks.
//
// The ingestion pipeline currently embeds whole pages as single vectors and
// does not use chunking.
func ChunkText(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		return nil
	}
	words := strings.Fields(text)
	var chunks []string
	for i := 0; i < len(words); i += chunkSize {
		end := min(i+chunkSize, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}
