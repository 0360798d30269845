package domain_test

import (
	"testing"

	"lexorigin/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDebateMetadataFrom_Defaults(t *testing.T) {
	meta := domain.DebateMetadataFrom(map[string]any{})

	assert.Equal(t, "Unknown", meta.SpeakerName)
	assert.Equal(t, "Unknown", meta.Party)
	assert.Equal(t, "Unknown", meta.Date)
	assert.Equal(t, "General", meta.Topic)
	assert.Equal(t, 0.0, meta.SentimentScore)
}

func TestDebateMetadataFrom_Populated(t *testing.T) {
	meta := domain.DebateMetadataFrom(map[string]any{
		"speaker_name":    "Jane Smith",
		"party":           "Liberal",
		"date":            "2023-05-01",
		"topic":           "Family Reunification",
		"sentiment_score": 0.4,
	})

	assert.Equal(t, "Jane Smith", meta.SpeakerName)
	assert.Equal(t, "Liberal", meta.Party)
	assert.Equal(t, "2023-05-01", meta.Date)
	assert.Equal(t, "Family Reunification", meta.Topic)
	assert.Equal(t, 0.4, meta.SentimentScore)
}

func TestLawMetadataFrom_Defaults(t *testing.T) {
	meta := domain.LawMetadataFrom(nil)

	assert.Equal(t, "Unknown", meta.LawName)
	assert.Equal(t, "", meta.LawCode)
	assert.Equal(t, "act", meta.LawType)
	assert.Equal(t, "Unknown Date", meta.DateEnacted)
}

func TestMetadataFrom_IgnoresWrongTypes(t *testing.T) {
	meta := domain.DebateMetadataFrom(map[string]any{
		"speaker_name":    42,
		"sentiment_score": "not a number",
	})

	assert.Equal(t, "Unknown", meta.SpeakerName)
	assert.Equal(t, 0.0, meta.SentimentScore)
}
