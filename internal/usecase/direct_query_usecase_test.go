package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexorigin/internal/domain"
	"lexorigin/internal/usecase"
)

// mockSearchUsecase mocks the SearchUsecase interface
type mockSearchUsecase struct {
	mock.Mock
}

func (m *mockSearchUsecase) SearchLaws(ctx context.Context, input usecase.SearchLawsInput) (*usecase.SearchOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SearchOutput), args.Error(1)
}

func (m *mockSearchUsecase) SearchDebates(ctx context.Context, input usecase.SearchDebatesInput) (*usecase.SearchOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SearchOutput), args.Error(1)
}

func searchOutputOf(results ...domain.SearchResult) *usecase.SearchOutput {
	return &usecase.SearchOutput{Results: results, Count: len(results)}
}

func TestDirectQuery_AnswersWithSourcesAndHighConfidence(t *testing.T) {
	search := new(mockSearchUsecase)
	llm := new(mockLLMClient)
	uc := usecase.NewDirectQueryUsecase(search, llm)
	ctx := context.Background()

	search.On("SearchLaws", ctx, usecase.SearchLawsInput{Query: "How do I sponsor a spouse?", NResults: 5, UseAI: false}).
		Return(searchOutputOf(
			domain.SearchResult{ID: "law_1", Text: "a", RelevanceScore: 0.9},
			domain.SearchResult{ID: "law_2", Text: "b", RelevanceScore: 0.8},
			domain.SearchResult{ID: "law_3", Text: "c", RelevanceScore: 0.7},
			domain.SearchResult{ID: "law_4", Text: "d", RelevanceScore: 0.6},
		), nil)
	search.On("SearchDebates", ctx, usecase.SearchDebatesInput{Query: "How do I sponsor a spouse?", NResults: 3}).
		Return(searchOutputOf(
			debateResult("deb_1", "Jane Smith", "Liberal", "2023-05-01", "Reform", "x"),
			debateResult("deb_2", "John Doe", "NDP", "2023-06-01", "Reform", "y"),
			debateResult("deb_3", "Ann Lee", "Bloc", "2023-07-01", "Reform", "z"),
		), nil)
	llm.On("Chat", ctx, mock.Anything).
		Return(&domain.LLMResponse{Text: "You can sponsor a spouse under IRPA section 13.", Done: true}, nil)

	out, err := uc.Execute(ctx, "How do I sponsor a spouse?")

	require.NoError(t, err)
	assert.Equal(t, "You can sponsor a spouse under IRPA section 13.", out.Answer)
	assert.InDelta(t, 0.8, out.Confidence, 1e-9)
	// Sources are capped at three laws and two debate speakers.
	require.Len(t, out.Sources, 5)
	assert.Equal(t, usecase.QuerySource{Type: "law", ID: "law_1", Relevance: 0.9}, out.Sources[0])
	assert.Equal(t, usecase.QuerySource{Type: "law", ID: "law_3", Relevance: 0.7}, out.Sources[2])
	assert.Equal(t, usecase.QuerySource{Type: "debate", Speaker: "Jane Smith"}, out.Sources[3])
	assert.Equal(t, usecase.QuerySource{Type: "debate", Speaker: "John Doe"}, out.Sources[4])
}

func TestDirectQuery_DebatesOnlyGivesMediumConfidence(t *testing.T) {
	search := new(mockSearchUsecase)
	llm := new(mockLLMClient)
	uc := usecase.NewDirectQueryUsecase(search, llm)
	ctx := context.Background()

	search.On("SearchLaws", ctx, mock.Anything).Return(searchOutputOf(), nil)
	search.On("SearchDebates", ctx, mock.Anything).
		Return(searchOutputOf(debateResult("deb_1", "Jane Smith", "Liberal", "2023-05-01", "Reform", "x")), nil)
	llm.On("Chat", ctx, mock.Anything).
		Return(&domain.LLMResponse{Text: "answer", Done: true}, nil)

	out, err := uc.Execute(ctx, "question")

	require.NoError(t, err)
	assert.InDelta(t, 0.5, out.Confidence, 1e-9)
	require.Len(t, out.Sources, 1)
	assert.Equal(t, "debate", out.Sources[0].Type)
}

func TestDirectQuery_NilLLMReturnsUnavailableAnswer(t *testing.T) {
	search := new(mockSearchUsecase)
	uc := usecase.NewDirectQueryUsecase(search, nil)

	out, err := uc.Execute(context.Background(), "question")

	require.NoError(t, err)
	assert.Equal(t, "AI is not available. Please check Ollama configuration.", out.Answer)
	assert.Empty(t, out.Sources)
	assert.Zero(t, out.Confidence)
	search.AssertNotCalled(t, "SearchLaws", mock.Anything, mock.Anything)
}

func TestDirectQuery_LLMErrorDegradesIntoAnswerText(t *testing.T) {
	search := new(mockSearchUsecase)
	llm := new(mockLLMClient)
	uc := usecase.NewDirectQueryUsecase(search, llm)
	ctx := context.Background()

	search.On("SearchLaws", ctx, mock.Anything).Return(searchOutputOf(), nil)
	search.On("SearchDebates", ctx, mock.Anything).Return(searchOutputOf(), nil)
	llm.On("Chat", ctx, mock.Anything).Return(nil, errors.New("model timed out"))

	out, err := uc.Execute(ctx, "question")

	require.NoError(t, err)
	assert.Equal(t, "Error processing query: model timed out", out.Answer)
	assert.Empty(t, out.Sources)
	assert.Zero(t, out.Confidence)
}

func TestDirectQuery_StoreErrorPropagates(t *testing.T) {
	search := new(mockSearchUsecase)
	llm := new(mockLLMClient)
	uc := usecase.NewDirectQueryUsecase(search, llm)
	ctx := context.Background()

	search.On("SearchLaws", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := uc.Execute(ctx, "question")

	assert.ErrorContains(t, err, "failed to retrieve law context")
}

func TestDirectQuery_RejectsEmptyQuestion(t *testing.T) {
	uc := usecase.NewDirectQueryUsecase(new(mockSearchUsecase), new(mockLLMClient))

	_, err := uc.Execute(context.Background(), "   ")

	assert.ErrorContains(t, err, "question is required")
}
