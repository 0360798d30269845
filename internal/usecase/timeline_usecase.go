package usecase

import (
	"context"
	"fmt"
	"sort"

	"lexorigin/internal/domain"
)

const (
	timelinePreviewLimit    = 150
	topicCandidateLimit     = 50
	unfilteredTimelineCap   = 100
	unknownDateSortSentinel = "0000-00-00"
)

// TimelineUsecase orders debate records chronologically for display.
type TimelineUsecase interface {
	// Execute returns timeline events, semantically filtered by topic when
	// one is given. lawID is accepted for API compatibility but does not
	// filter anything.
	Execute(ctx context.Context, lawID, topic string) ([]domain.TimelineEvent, error)
}

type timelineUsecase struct {
	store domain.CollectionStore
}

func NewTimelineUsecase(store domain.CollectionStore) TimelineUsecase {
	return &timelineUsecase{store: store}
}

func (u *timelineUsecase) Execute(ctx context.Context, lawID, topic string) ([]domain.TimelineEvent, error) {
	_ = lawID // not used for filtering; preserved as a no-op parameter

	var docs []domain.Document
	if topic != "" {
		matches, err := u.store.Query(ctx, domain.CollectionHansardDebates, topic, topicCandidateLimit, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to query debates for topic: %w", err)
		}
		docs = make([]domain.Document, len(matches))
		for i, m := range matches {
			docs[i] = m.Document
		}
	} else {
		var err error
		docs, err = u.store.List(ctx, domain.CollectionHansardDebates, unfilteredTimelineCap)
		if err != nil {
			return nil, fmt.Errorf("failed to list debates: %w", err)
		}
	}

	events := make([]domain.TimelineEvent, 0, len(docs))
	for _, doc := range docs {
		meta := domain.DebateMetadataFrom(doc.Metadata)

		preview := truncateRunes(doc.Text, timelinePreviewLimit)
		if preview != doc.Text {
			preview += "..."
		}

		events = append(events, domain.TimelineEvent{
			ID:        doc.ID,
			Date:      meta.Date,
			Label:     fmt.Sprintf("%s (%s)", meta.SpeakerName, meta.Party),
			Topic:     meta.Topic,
			Sentiment: meta.SentimentScore,
			Preview:   preview,
		})
	}

	// Unknown dates are remapped only for ordering, so they sort before any
	// real date while the event keeps its literal "Unknown" label. The sort
	// must be stable to keep same-date events deterministic.
	sort.SliceStable(events, func(i, j int) bool {
		return timelineSortKey(events[i].Date) < timelineSortKey(events[j].Date)
	})

	return events, nil
}

func timelineSortKey(date string) string {
	if date == "Unknown" {
		return unknownDateSortSentinel
	}
	return date
}
