package usecase

import (
	"context"
	"log/slog"
	"strings"

	"lexorigin/internal/domain"
)

// QueryEnhancer rewrites a raw query into a more precise semantic-search
// query. Enhancement is best-effort: any LLM failure degrades silently to the
// original query and is only logged.
type QueryEnhancer interface {
	Enhance(ctx context.Context, query string, useAI bool) string
}

type llmQueryEnhancer struct {
	llm domain.LLMClient // nil when the LLM is unavailable
}

// NewQueryEnhancer creates an enhancer backed by the given LLM client, which
// may be nil.
func NewQueryEnhancer(llm domain.LLMClient) QueryEnhancer {
	return &llmQueryEnhancer{llm: llm}
}

func (e *llmQueryEnhancer) Enhance(ctx context.Context, query string, useAI bool) string {
	if !useAI || e.llm == nil {
		return query
	}

	resp, err := e.llm.Chat(ctx, []domain.Message{
		{Role: "system", Content: enhanceQuerySystemPrompt},
		{Role: "user", Content: query},
	})
	if err != nil {
		slog.Warn("query enhancement failed", slog.String("error", err.Error()))
		return query
	}

	enhanced := strings.TrimSpace(resp.Text)
	if enhanced == "" {
		slog.Warn("query enhancement returned empty output")
		return query
	}

	slog.Debug("query enhanced", slog.String("original", query), slog.String("enhanced", enhanced))
	return enhanced
}
