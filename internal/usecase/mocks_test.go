package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lexorigin/internal/domain"
)

// mockCollectionStore mocks the CollectionStore interface
type mockCollectionStore struct {
	mock.Mock
}

func (m *mockCollectionStore) Upsert(ctx context.Context, collection string, docs []domain.Document) error {
	args := m.Called(ctx, collection, docs)
	return args.Error(0)
}

func (m *mockCollectionStore) Query(ctx context.Context, collection, query string, limit int, filter map[string]string) ([]domain.QueryMatch, error) {
	args := m.Called(ctx, collection, query, limit, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QueryMatch), args.Error(1)
}

func (m *mockCollectionStore) List(ctx context.Context, collection string, limit int) ([]domain.Document, error) {
	args := m.Called(ctx, collection, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *mockCollectionStore) Count(ctx context.Context, collection string) (int, error) {
	args := m.Called(ctx, collection)
	return args.Int(0), args.Error(1)
}

// mockLLMClient mocks the LLMClient interface
type mockLLMClient struct {
	mock.Mock
}

func (m *mockLLMClient) Chat(ctx context.Context, messages []domain.Message) (*domain.LLMResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LLMResponse), args.Error(1)
}

func (m *mockLLMClient) ChatStructured(ctx context.Context, messages []domain.Message) (*domain.LLMResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LLMResponse), args.Error(1)
}

func (m *mockLLMClient) Version() string {
	args := m.Called()
	return args.String(0)
}

func distanceOf(d float64) *float64 {
	return &d
}

func debateMatch(id, speaker, party, date, text string, distance float64) domain.QueryMatch {
	return domain.QueryMatch{
		Document: domain.Document{
			ID:   id,
			Text: text,
			Metadata: map[string]any{
				"speaker_name": speaker,
				"party":        party,
				"date":         date,
				"topic":        "Immigration Reform",
			},
		},
		Distance: distanceOf(distance),
	}
}

func lawMatch(id, lawName, section, text string, distance float64) domain.QueryMatch {
	return domain.QueryMatch{
		Document: domain.Document{
			ID:   id,
			Text: text,
			Metadata: map[string]any{
				"law_name": lawName,
				"law_code": "IRPA",
				"section":  section,
			},
		},
		Distance: distanceOf(distance),
	}
}
