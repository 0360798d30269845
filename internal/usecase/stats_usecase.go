package usecase

import (
	"context"
	"fmt"

	"lexorigin/internal/domain"
)

// StatsOutput reports the live cardinality of both collections. No caching:
// every call reflects current store state.
type StatsOutput struct {
	LegalTexts     domain.CollectionStats `json:"legal_texts"`
	HansardDebates domain.CollectionStats `json:"hansard_debates"`
}

type StatsUsecase interface {
	Execute(ctx context.Context) (*StatsOutput, error)
}

type statsUsecase struct {
	store domain.CollectionStore
}

func NewStatsUsecase(store domain.CollectionStore) StatsUsecase {
	return &statsUsecase{store: store}
}

func (u *statsUsecase) Execute(ctx context.Context) (*StatsOutput, error) {
	lawCount, err := u.store.Count(ctx, domain.CollectionLegalTexts)
	if err != nil {
		return nil, fmt.Errorf("failed to count laws: %w", err)
	}
	debateCount, err := u.store.Count(ctx, domain.CollectionHansardDebates)
	if err != nil {
		return nil, fmt.Errorf("failed to count debates: %w", err)
	}

	return &StatsOutput{
		LegalTexts:     domain.CollectionStats{Count: lawCount, Name: domain.CollectionLegalTexts},
		HansardDebates: domain.CollectionStats{Count: debateCount, Name: domain.CollectionHansardDebates},
	}, nil
}
