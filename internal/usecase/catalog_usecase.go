package usecase

import (
	"context"
	"fmt"

	"lexorigin/internal/domain"
)

const lawCatalogLimit = 500

// LawCatalogUsecase lists the stored law sections as typed catalog entries.
type LawCatalogUsecase interface {
	ListLaws(ctx context.Context) ([]domain.LawEntry, error)
}

type lawCatalogUsecase struct {
	store domain.CollectionStore
}

func NewLawCatalogUsecase(store domain.CollectionStore) LawCatalogUsecase {
	return &lawCatalogUsecase{store: store}
}

func (u *lawCatalogUsecase) ListLaws(ctx context.Context) ([]domain.LawEntry, error) {
	docs, err := u.store.List(ctx, domain.CollectionLegalTexts, lawCatalogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list laws: %w", err)
	}

	entries := make([]domain.LawEntry, 0, len(docs))
	for _, doc := range docs {
		meta := domain.LawMetadataFrom(doc.Metadata)
		entries = append(entries, domain.LawEntry{
			ID:           doc.ID,
			Title:        fmt.Sprintf("%s - Section %s", meta.LawName, meta.Section),
			LawName:      meta.LawName,
			Section:      meta.Section,
			SectionTitle: meta.SectionTitle,
			Text:         doc.Text,
			Date:         meta.DateEnacted,
			Type:         meta.LawType,
		})
	}
	return entries, nil
}
