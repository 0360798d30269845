package domain

// Collection names. The two corpora are independently addressable partitions
// of the vector store and are never queried together.
const (
	CollectionLegalTexts     = "legal_texts"
	CollectionHansardDebates = "hansard_debates"
)

// Document is a single record as stored in (and retrieved from) a collection.
// Metadata keys are scalar-valued; the typed views in metadata.go interpret
// them per collection.
type Document struct {
	ID       string         `json:"id"`
	Text     string         `json:"document"`
	Metadata map[string]any `json:"metadata"`
}

// QueryMatch is a Document returned from a nearest-neighbor query together
// with its raw distance. Distance is nil when the index cannot report one;
// relevance conversion handles that case.
type QueryMatch struct {
	Document
	Distance *float64
}

// SearchResult is the caller-facing projection of a QueryMatch with the
// distance converted to a bounded relevance score.
type SearchResult struct {
	ID             string         `json:"id"`
	Text           string         `json:"document"`
	Metadata       map[string]any `json:"metadata"`
	RelevanceScore float64        `json:"relevance_score"`
}

// CollectionStats reports the live cardinality of one collection.
type CollectionStats struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}
