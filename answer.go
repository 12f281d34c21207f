package scraperbot

// SnippetMatch is a similarity result enriched with a content snippet for
// display. Similarity is rounded to two decimal places.
type SnippetMatch struct {
	ID         int64   `json:"id"`
	URL        string  `json:"url"`
	Similarity float64 `json:"similarity"`
	Snippet    string  `json:"snippet"`
}

// SourceAnswer is an LLM-generated answer grounded in a single matched
// document.
type SourceAnswer struct {
	ID         int64   `json:"id"`
	URL        string  `json:"url"`
	Answer     string  `json:"answer"`
	Similarity float64 `json:"similarity"`
}

// Answer is the combined result of a question-answering call. LLMSearch may
// contain fewer entries than VectorSimilarity when individual completion
// calls fail; every entry in LLMSearch references an id present in
// VectorSimilarity.
type Answer struct {
	VectorSimilarity []SnippetMatch `json:"vector_similarity"`
	LLMSearch        []SourceAnswer `json:"llm_search"`
}
