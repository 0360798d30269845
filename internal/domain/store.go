package domain

import "context"

// CollectionStore defines the operations the pipeline needs from the vector
// store. Implementations own the query-text embedding step; callers deal in
// plain strings. Filter keys are matched for equality against metadata and
// are pushed into the index query (pre-filter), unlike the post-hoc date
// predicate applied in the search usecase.
type CollectionStore interface {
	// Upsert inserts or replaces documents by ID (last write wins).
	Upsert(ctx context.Context, collection string, docs []Document) error

	// Query returns up to limit nearest neighbors for the query text,
	// ordered by ascending distance. Tie order is index-defined.
	Query(ctx context.Context, collection, query string, limit int, filter map[string]string) ([]QueryMatch, error)

	// List returns up to limit documents in store order, which is not
	// guaranteed to be chronological or insertion order.
	List(ctx context.Context, collection string, limit int) ([]Document, error)

	// Count returns the live cardinality of the collection.
	Count(ctx context.Context, collection string) (int, error)
}
