package usecase

import (
	"fmt"
	"strings"

	"lexorigin/internal/domain"
)

// Per-record truncation limits for assembled evidence context. Cuts are hard
// rune cuts, not word-aware.
const (
	lawExcerptLimit        = 500
	debateExcerptLimit     = 300
	relatedLawExcerptLimit = 300
)

// ContextBuilder formats retrieved records into the textual evidence blocks
// fed to the LLM.
type ContextBuilder struct{}

func NewContextBuilder() ContextBuilder {
	return ContextBuilder{}
}

// BuildQueryContext assembles the evidence block for direct question
// answering: a RELEVANT LAWS section followed by a RELEVANT DEBATES section.
// Either section is omitted when its result set is empty.
func (ContextBuilder) BuildQueryContext(laws, debates []domain.SearchResult) string {
	var parts []string

	if len(laws) > 0 {
		parts = append(parts, "RELEVANT LAWS:")
		for _, law := range laws {
			meta := domain.LawMetadataFrom(law.Metadata)
			parts = append(parts, fmt.Sprintf("[%s] %s: %s", law.ID, meta.LawName, truncateRunes(law.Text, lawExcerptLimit)))
		}
	}

	if len(debates) > 0 {
		parts = append(parts, "\nRELEVANT DEBATES:")
		for _, debate := range debates {
			meta := domain.DebateMetadataFrom(debate.Metadata)
			parts = append(parts, fmt.Sprintf("[%s - %s]: %s", meta.SpeakerName, meta.Party, truncateRunes(debate.Text, debateExcerptLimit)))
		}
	}

	return strings.Join(parts, "\n")
}

// BuildIntentContext assembles the evidence block for legislative-intent
// analysis: full debate records first, then a RELATED LAW SECTIONS appendix
// of truncated law excerpts.
func (ContextBuilder) BuildIntentContext(debates, laws []domain.SearchResult) string {
	var sb strings.Builder

	for _, debate := range debates {
		meta := domain.DebateMetadataFrom(debate.Metadata)
		sb.WriteString(fmt.Sprintf("Speaker: %s\n", meta.SpeakerName))
		sb.WriteString(fmt.Sprintf("Party: %s\n", meta.Party))
		sb.WriteString(fmt.Sprintf("Date: %s\n", meta.Date))
		sb.WriteString(fmt.Sprintf("Topic: %s\n", meta.Topic))
		sb.WriteString(fmt.Sprintf("Text: %s\n\n", debate.Text))
	}

	if len(laws) > 0 {
		sb.WriteString("\nRELATED LAW SECTIONS:\n")
		for _, law := range laws {
			meta := domain.LawMetadataFrom(law.Metadata)
			sb.WriteString(fmt.Sprintf("[%s-%s] %s...\n\n", meta.LawCode, meta.Section, truncateRunes(law.Text, relatedLawExcerptLimit)))
		}
	}

	return sb.String()
}

// truncateRunes cuts s to at most limit runes. The cut is by code points so
// multi-byte text is never split mid-character.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
