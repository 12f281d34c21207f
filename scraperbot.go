// Package scraperbot provides a web scraping and question-answering service.
// It crawls websites depth-first within an origin, embeds the cleaned page
// text as vectors, stores them in Postgres with pgvector, and answers natural
// language questions by combining vector similarity search with per-result
// LLM completions.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., postgres/, openai/, goquery/).
package scraperbot
