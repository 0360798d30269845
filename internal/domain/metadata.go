package domain

// Typed views over the open metadata map stored per collection. The store
// keeps metadata schemaless (the ingestion sources still evolve); these
// constructors apply the defaulting rules the rest of the pipeline relies on.

// LawMetadata describes one section of an act, regulation, rules or order.
type LawMetadata struct {
	LawName      string
	LawCode      string
	Section      string
	SectionTitle string
	DateEnacted  string
	LawType      string
}

// DebateMetadata describes one Hansard intervention. Date is ISO YYYY-MM-DD
// or the literal sentinel "Unknown".
type DebateMetadata struct {
	SpeakerName    string
	Party          string
	Date           string
	Topic          string
	SentimentScore float64
}

// LawMetadataFrom builds a typed view of a legal_texts metadata map.
func LawMetadataFrom(m map[string]any) LawMetadata {
	return LawMetadata{
		LawName:      metaString(m, "law_name", "Unknown"),
		LawCode:      metaString(m, "law_code", ""),
		Section:      metaString(m, "section", ""),
		SectionTitle: metaString(m, "section_title", ""),
		DateEnacted:  metaString(m, "date_enacted", "Unknown Date"),
		LawType:      metaString(m, "law_type", "act"),
	}
}

// DebateMetadataFrom builds a typed view of a hansard_debates metadata map.
func DebateMetadataFrom(m map[string]any) DebateMetadata {
	return DebateMetadata{
		SpeakerName:    metaString(m, "speaker_name", "Unknown"),
		Party:          metaString(m, "party", "Unknown"),
		Date:           metaString(m, "date", "Unknown"),
		Topic:          metaString(m, "topic", "General"),
		SentimentScore: metaFloat(m, "sentiment_score", 0.0),
	}
}

func metaString(m map[string]any, key, fallback string) string {
	if m == nil {
		return fallback
	}
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func metaFloat(m map[string]any, key string, fallback float64) float64 {
	if m == nil {
		return fallback
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	}
	return fallback
}
