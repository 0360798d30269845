package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"lexorigin/internal/domain"
)

// AnalysisParser turns the structured-output tier's raw response into a fully
// populated Analysis. Parse failures are returned so the caller can fall
// through to the next tier; missing fields are backfilled rather than
// rejected.
type AnalysisParser struct{}

func NewAnalysisParser() AnalysisParser {
	return AnalysisParser{}
}

// analysisPayload uses pointer slices so that an explicitly empty array is
// preserved while an absent key triggers backfilling.
type analysisPayload struct {
	Summary          string             `json:"summary"`
	ControversyLevel string             `json:"controversy_level"`
	ConsensusColor   string             `json:"consensus_color"`
	Citations        *[]domain.Citation `json:"citations"`
	KeyArguments     *[]string          `json:"key_arguments"`
}

// Parse decodes raw LLM output and backfills absent fields from the retrieved
// debate evidence.
func (AnalysisParser) Parse(raw string, retrieved []domain.Citation) (*domain.Analysis, error) {
	trimmed := stripCodeFence(strings.TrimSpace(raw))
	if trimmed == "" {
		return nil, errors.New("llm response is empty")
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	analysis := &domain.Analysis{
		Summary:          payload.Summary,
		ControversyLevel: payload.ControversyLevel,
		ConsensusColor:   payload.ConsensusColor,
		KeyArguments:     []string{},
	}
	if analysis.Summary == "" {
		analysis.Summary = "Analysis not available"
	}
	if analysis.ControversyLevel == "" {
		analysis.ControversyLevel = "Unknown"
	}
	if analysis.ConsensusColor == "" {
		analysis.ConsensusColor = "gray"
	}
	if payload.Citations != nil {
		analysis.Citations = *payload.Citations
	} else {
		analysis.Citations = topCitations(retrieved, 3)
	}
	if payload.KeyArguments != nil {
		analysis.KeyArguments = *payload.KeyArguments
	}

	return analysis, nil
}

// stripCodeFence removes a surrounding markdown code fence, which chat models
// wrap around JSON output often enough to handle here.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	trimmed := strings.TrimPrefix(s, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func topCitations(citations []domain.Citation, limit int) []domain.Citation {
	if len(citations) <= limit {
		return citations
	}
	return citations[:limit]
}
