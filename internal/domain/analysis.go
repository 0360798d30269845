package domain

// Citation is one debate excerpt supporting an analysis.
type Citation struct {
	Speaker   string  `json:"speaker"`
	Party     string  `json:"party"`
	Date      string  `json:"date"`
	Text      string  `json:"text"`
	Sentiment float64 `json:"sentiment"`
}

// Analysis is the structured legislative-intent result. The operation that
// produces it never fails: every tier of the fallback chain yields a fully
// populated Analysis.
//
// ConsensusColor and ControversyLevel are conventionally correlated
// (green/Low, yellow/Medium, red/High) but the correlation is advisory and
// not enforced.
type Analysis struct {
	Summary          string     `json:"summary"`
	ControversyLevel string     `json:"controversy_level"`
	ConsensusColor   string     `json:"consensus_color"`
	Citations        []Citation `json:"citations"`
	KeyArguments     []string   `json:"key_arguments"`
}

// TimelineEvent is a chronologically orderable projection of a debate record.
type TimelineEvent struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Label     string  `json:"label"`
	Topic     string  `json:"topic"`
	Sentiment float64 `json:"sentiment"`
	Preview   string  `json:"preview"`
}

// LawEntry is the catalog projection of a legal_texts document.
type LawEntry struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	LawName      string `json:"law_name"`
	Section      string `json:"section"`
	SectionTitle string `json:"section_title"`
	Text         string `json:"text"`
	Date         string `json:"date"`
	Type         string `json:"type"`
}
