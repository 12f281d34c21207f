package scraperbot

import (
	"regexp"
	"strings"
)

var (
	nonWordRE    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// NormalizeText cleans raw page text for embedding. It strips every character
// that is not alphanumeric, underscore or whitespace, collapses whitespace
// runs (including newlines) to single spaces, and trims the ends. The
// function is total and idempotent.
func NormalizeText(text string) string {
	text = nonWordRE.ReplaceAllString(text, "")
	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
