package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lexorigin/internal/domain"

	"github.com/google/uuid"
)

// Evidence fetched once per analysis and reused by every tier.
const (
	debateEvidenceLimit = 5
	lawEvidenceLimit    = 3
)

// AnalyzeIntentInput carries the law text under analysis. LawContext is
// accepted for API compatibility but not consumed by the current pipeline.
type AnalyzeIntentInput struct {
	LawText    string
	LawContext string
}

// AnalyzeIntentUsecase produces a legislative-intent analysis. Execute never
// fails: the tier chain (structured output, free text, static fallback)
// guarantees a well-formed Analysis, which is why the signature carries no
// error.
type AnalyzeIntentUsecase interface {
	Execute(ctx context.Context, input AnalyzeIntentInput) *domain.Analysis
}

type analyzeIntentUsecase struct {
	store   domain.CollectionStore
	llm     domain.LLMClient // nil when the LLM is unavailable
	builder ContextBuilder
	parser  AnalysisParser
}

// NewAnalyzeIntentUsecase wires retrieval, context assembly and the LLM tier
// chain together. llm may be nil, in which case every analysis takes the
// static fallback path.
func NewAnalyzeIntentUsecase(store domain.CollectionStore, llm domain.LLMClient) AnalyzeIntentUsecase {
	return &analyzeIntentUsecase{
		store:   store,
		llm:     llm,
		builder: NewContextBuilder(),
		parser:  NewAnalysisParser(),
	}
}

func (u *analyzeIntentUsecase) Execute(ctx context.Context, input AnalyzeIntentInput) *domain.Analysis {
	analysisID := uuid.NewString()

	// Retrieval happens once, before any LLM tier. Store errors degrade to
	// empty evidence rather than breaking the guaranteed-response contract.
	debates := u.queryEvidence(ctx, analysisID, domain.CollectionHansardDebates, input.LawText, debateEvidenceLimit)
	laws := u.queryEvidence(ctx, analysisID, domain.CollectionLegalTexts, input.LawText, lawEvidenceLimit)

	retrieved := citationsFrom(debates)
	evidence := u.builder.BuildIntentContext(debates, laws)

	if u.llm == nil {
		slog.Warn("llm unavailable, using static analysis fallback", slog.String("analysis_id", analysisID))
		return staticFallbackAnalysis(retrieved)
	}

	messages := []domain.Message{
		{Role: "system", Content: analysisSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Law Text: %s\n\nContext (Debates and Related Laws):\n%s", input.LawText, evidence)},
	}

	// Tier 1: schema-constrained structured output.
	if resp, err := u.llm.ChatStructured(ctx, messages); err != nil {
		slog.Warn("structured analysis call failed", slog.String("analysis_id", analysisID), slog.String("error", err.Error()))
	} else if analysis, perr := u.parser.Parse(resp.Text, retrieved); perr != nil {
		slog.Warn("structured analysis parse failed", slog.String("analysis_id", analysisID), slog.String("error", perr.Error()))
	} else {
		return analysis
	}

	// Tier 2: free-text summary with fixed classification.
	if resp, err := u.llm.Chat(ctx, messages); err != nil {
		slog.Warn("free-text analysis call failed", slog.String("analysis_id", analysisID), slog.String("error", err.Error()))
	} else if text := strings.TrimSpace(resp.Text); text != "" {
		return &domain.Analysis{
			Summary:          text,
			ControversyLevel: "Medium",
			ConsensusColor:   "yellow",
			Citations:        topCitations(retrieved, 3),
			KeyArguments:     []string{"See summary for details"},
		}
	} else {
		slog.Warn("free-text analysis returned empty output", slog.String("analysis_id", analysisID))
	}

	// Tier 3: static fallback.
	slog.Warn("using static analysis fallback", slog.String("analysis_id", analysisID))
	return staticFallbackAnalysis(retrieved)
}

func (u *analyzeIntentUsecase) queryEvidence(ctx context.Context, analysisID, collection, query string, limit int) []domain.SearchResult {
	matches, err := u.store.Query(ctx, collection, query, limit, nil)
	if err != nil {
		slog.Warn("evidence retrieval failed",
			slog.String("analysis_id", analysisID),
			slog.String("collection", collection),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return toSearchResults(matches)
}

func citationsFrom(debates []domain.SearchResult) []domain.Citation {
	citations := make([]domain.Citation, 0, len(debates))
	for _, debate := range debates {
		meta := domain.DebateMetadataFrom(debate.Metadata)
		citations = append(citations, domain.Citation{
			Speaker:   meta.SpeakerName,
			Party:     meta.Party,
			Date:      meta.Date,
			Text:      debate.Text,
			Sentiment: meta.SentimentScore,
		})
	}
	return citations
}

func staticFallbackAnalysis(retrieved []domain.Citation) *domain.Analysis {
	return &domain.Analysis{
		Summary:          "[ANALYSIS UNAVAILABLE] The AI model is not responding. Based on retrieved debates, the legislative intent appears focused on balancing immigration facilitation with security concerns.",
		ControversyLevel: "Medium",
		ConsensusColor:   "yellow",
		Citations:        topCitations(retrieved, 3),
		KeyArguments: []string{
			"Immigration efficiency vs security trade-offs",
			"Family reunification priorities",
			"Processing time concerns",
		},
	}
}
