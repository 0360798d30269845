package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexorigin/internal/domain"
	"lexorigin/internal/usecase"
)

func TestStats_ReportsBothCollections(t *testing.T) {
	store := new(mockCollectionStore)
	uc := usecase.NewStatsUsecase(store)
	ctx := context.Background()

	store.On("Count", ctx, domain.CollectionLegalTexts).Return(42, nil)
	store.On("Count", ctx, domain.CollectionHansardDebates).Return(317, nil)

	out, err := uc.Execute(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.CollectionStats{Count: 42, Name: "legal_texts"}, out.LegalTexts)
	assert.Equal(t, domain.CollectionStats{Count: 317, Name: "hansard_debates"}, out.HansardDebates)
}

func TestStats_CountErrorPropagates(t *testing.T) {
	store := new(mockCollectionStore)
	uc := usecase.NewStatsUsecase(store)
	ctx := context.Background()

	store.On("Count", ctx, domain.CollectionLegalTexts).Return(0, errors.New("connection refused"))

	_, err := uc.Execute(ctx)

	assert.ErrorContains(t, err, "failed to count laws")
}
