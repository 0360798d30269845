package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lexorigin/internal/domain"
)

const (
	directQueryLawLimit    = 5
	directQueryDebateLimit = 3
	lawSourceLimit         = 3
	debateSourceLimit      = 2
)

// QuerySource identifies one piece of evidence behind a direct answer.
type QuerySource struct {
	Type      string  `json:"type"`
	ID        string  `json:"id,omitempty"`
	Relevance float64 `json:"relevance,omitempty"`
	Speaker   string  `json:"speaker,omitempty"`
}

// DirectQueryOutput is the answer to a free-form question. Confidence is a
// coarse heuristic: 0.8 when law evidence backed the answer, 0.5 when only
// debates did, 0 when the LLM was unavailable or erroring.
type DirectQueryOutput struct {
	Answer     string        `json:"answer"`
	Sources    []QuerySource `json:"sources"`
	Confidence float64       `json:"confidence"`
}

// DirectQueryUsecase answers a question with retrieved statute and debate
// context. Store failures propagate; LLM failures degrade into the answer
// text.
type DirectQueryUsecase interface {
	Execute(ctx context.Context, question string) (*DirectQueryOutput, error)
}

type directQueryUsecase struct {
	search  SearchUsecase
	llm     domain.LLMClient // nil when the LLM is unavailable
	builder ContextBuilder
}

func NewDirectQueryUsecase(search SearchUsecase, llm domain.LLMClient) DirectQueryUsecase {
	return &directQueryUsecase{
		search:  search,
		llm:     llm,
		builder: NewContextBuilder(),
	}
}

func (u *directQueryUsecase) Execute(ctx context.Context, question string) (*DirectQueryOutput, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question is required")
	}

	if u.llm == nil {
		return &DirectQueryOutput{
			Answer:     "AI is not available. Please check Ollama configuration.",
			Sources:    []QuerySource{},
			Confidence: 0,
		}, nil
	}

	laws, err := u.search.SearchLaws(ctx, SearchLawsInput{Query: question, NResults: directQueryLawLimit, UseAI: false})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve law context: %w", err)
	}
	debates, err := u.search.SearchDebates(ctx, SearchDebatesInput{Query: question, NResults: directQueryDebateLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve debate context: %w", err)
	}

	evidence := u.builder.BuildQueryContext(laws.Results, debates.Results)

	resp, err := u.llm.Chat(ctx, []domain.Message{
		{Role: "system", Content: directQuerySystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Question: %s\n\nContext:\n%s", question, evidence)},
	})
	if err != nil {
		slog.Warn("direct query llm call failed", slog.String("error", err.Error()))
		return &DirectQueryOutput{
			Answer:     fmt.Sprintf("Error processing query: %v", err),
			Sources:    []QuerySource{},
			Confidence: 0,
		}, nil
	}

	sources := make([]QuerySource, 0, lawSourceLimit+debateSourceLimit)
	for i, law := range laws.Results {
		if i >= lawSourceLimit {
			break
		}
		sources = append(sources, QuerySource{Type: "law", ID: law.ID, Relevance: law.RelevanceScore})
	}
	for i, debate := range debates.Results {
		if i >= debateSourceLimit {
			break
		}
		meta := domain.DebateMetadataFrom(debate.Metadata)
		sources = append(sources, QuerySource{Type: "debate", Speaker: meta.SpeakerName})
	}

	confidence := 0.5
	if len(laws.Results) > 0 {
		confidence = 0.8
	}

	return &DirectQueryOutput{
		Answer:     resp.Text,
		Sources:    sources,
		Confidence: confidence,
	}, nil
}
