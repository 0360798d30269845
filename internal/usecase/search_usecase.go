package usecase

import (
	"context"
	"fmt"
	"strings"

	"lexorigin/internal/domain"
)

// SearchLawsInput drives a semantic search over the legal_texts collection.
type SearchLawsInput struct {
	Query    string
	NResults int
	UseAI    bool
}

// SearchDebatesInput drives a semantic search over the hansard_debates
// collection. PartyFilter is pushed into the index query; the date range is a
// post-hoc predicate, so fewer than NResults rows can come back even when
// more matches exist beyond the candidate window.
type SearchDebatesInput struct {
	Query       string
	NResults    int
	PartyFilter string
	DateFrom    string
	DateTo      string
}

// SearchOutput is the ranked result set for either collection.
type SearchOutput struct {
	Results []domain.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

// SearchUsecase performs semantic search over the two document collections.
type SearchUsecase interface {
	SearchLaws(ctx context.Context, input SearchLawsInput) (*SearchOutput, error)
	SearchDebates(ctx context.Context, input SearchDebatesInput) (*SearchOutput, error)
}

type searchUsecase struct {
	store    domain.CollectionStore
	enhancer QueryEnhancer
}

// NewSearchUsecase wires the store and the query enhancer together.
func NewSearchUsecase(store domain.CollectionStore, enhancer QueryEnhancer) SearchUsecase {
	return &searchUsecase{store: store, enhancer: enhancer}
}

func (u *searchUsecase) SearchLaws(ctx context.Context, input SearchLawsInput) (*SearchOutput, error) {
	if err := validateSearchInput(input.Query, input.NResults); err != nil {
		return nil, err
	}

	query := u.enhancer.Enhance(ctx, input.Query, input.UseAI)

	matches, err := u.store.Query(ctx, domain.CollectionLegalTexts, query, input.NResults, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to search laws: %w", err)
	}

	results := toSearchResults(matches)
	return &SearchOutput{Results: results, Count: len(results)}, nil
}

func (u *searchUsecase) SearchDebates(ctx context.Context, input SearchDebatesInput) (*SearchOutput, error) {
	if err := validateSearchInput(input.Query, input.NResults); err != nil {
		return nil, err
	}

	var filter map[string]string
	if input.PartyFilter != "" {
		filter = map[string]string{"party": input.PartyFilter}
	}

	matches, err := u.store.Query(ctx, domain.CollectionHansardDebates, input.Query, input.NResults, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search debates: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(matches))
	for _, m := range matches {
		// Date range is filtered after retrieval by plain string comparison.
		// Dates are zero-padded ISO strings, so lexicographic order matches
		// chronological order; the sentinel "Unknown" sorts above every real
		// date and a missing date compares as the empty string.
		date, _ := m.Metadata["date"].(string)
		if input.DateFrom != "" && date < input.DateFrom {
			continue
		}
		if input.DateTo != "" && date > input.DateTo {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:             m.ID,
			Text:           m.Text,
			Metadata:       m.Metadata,
			RelevanceScore: domain.RelevanceFromDistance(m.Distance),
		})
	}

	return &SearchOutput{Results: results, Count: len(results)}, nil
}

func toSearchResults(matches []domain.QueryMatch) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, domain.SearchResult{
			ID:             m.ID,
			Text:           m.Text,
			Metadata:       m.Metadata,
			RelevanceScore: domain.RelevanceFromDistance(m.Distance),
		})
	}
	return results
}

func validateSearchInput(query string, nResults int) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}
	if nResults < 1 {
		return fmt.Errorf("n_results must be at least 1")
	}
	return nil
}
