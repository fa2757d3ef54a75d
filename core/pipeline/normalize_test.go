package pipeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/salienza/salienza/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRawEntity(t *testing.T) {
	t.Run("Complete raw entity", func(t *testing.T) {
		raw := model.RawEntity{
			Name:     "Rome",
			Type:     "LOCATION",
			Salience: 0.4,
			Mentions: []model.RawMention{
				{Text: model.RawTextSpan{Content: "Rome", BeginOffset: 12}, Type: "PROPER"},
				{Text: model.RawTextSpan{Content: "the city", BeginOffset: 80}, Type: "COMMON"},
			},
			Metadata: map[string]string{
				"wikipedia_url": "https://en.wikipedia.org/wiki/Rome",
				"mid":           "/m/06c62",
			},
		}

		entity := NormalizeRawEntity(raw)

		assert.NotEqual(t, uuid.Nil, entity.ID)
		assert.Equal(t, "Rome", entity.Name)
		assert.Equal(t, model.EntityTypeLocation, entity.Type)
		assert.Equal(t, "Location", entity.TypeName)
		assert.Equal(t, "#388e3c", entity.Color)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Rome", entity.WikipediaURL)
		require.Equal(t, 2, len(entity.Mentions))
		assert.Equal(t, model.MentionTypeProper, entity.Mentions[0].Type)
		assert.Equal(t, 12, entity.Mentions[0].BeginOffset)
	})

	t.Run("Missing fields get defaults", func(t *testing.T) {
		raw := model.RawEntity{
			Mentions: []model.RawMention{
				{Text: model.RawTextSpan{Content: "x", BeginOffset: -5}, Type: "SOMETHING_ELSE"},
			},
		}

		entity := NormalizeRawEntity(raw)

		assert.Equal(t, "Unknown", entity.Name)
		assert.Equal(t, model.EntityTypeOther, entity.Type)
		assert.Equal(t, model.MentionTypeCommon, entity.Mentions[0].Type)
		assert.Equal(t, 0, entity.Mentions[0].BeginOffset, "Negative offsets are clamped")
		assert.NotNil(t, entity.Metadata)
	})

	t.Run("Unknown type falls back to OTHER", func(t *testing.T) {
		raw := model.RawEntity{Name: "x", Type: "GADGET"}

		entity := NormalizeRawEntity(raw)

		assert.Equal(t, model.EntityTypeOther, entity.Type)
	})

	t.Run("Each call assigns a fresh ID", func(t *testing.T) {
		raw := model.RawEntity{Name: "x", Type: "OTHER"}

		first := NormalizeRawEntity(raw)
		second := NormalizeRawEntity(raw)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestCalculateConfidence(t *testing.T) {
	t.Run("Base case", func(t *testing.T) {
		mentions := []model.Mention{{Text: "x", Type: model.MentionTypeCommon}}

		confidence := CalculateConfidence(0.1, mentions, "")

		// 0.1 salience + 0.1 mention boost
		assert.InDelta(t, 0.2, confidence, 0.0001)
	})

	t.Run("All boosts", func(t *testing.T) {
		mentions := []model.Mention{
			{Text: "X", Type: model.MentionTypeProper},
			{Text: "x", Type: model.MentionTypeCommon},
		}

		confidence := CalculateConfidence(0.2, mentions, "https://en.wikipedia.org/wiki/X")

		// 0.2 + 0.2 mentions + 0.1 wikipedia + 0.1 proper
		assert.InDelta(t, 0.6, confidence, 0.0001)
	})

	t.Run("Mention boost is capped at 0.3", func(t *testing.T) {
		mentions := make([]model.Mention, 10)
		for i := range mentions {
			mentions[i] = model.Mention{Text: "x", Type: model.MentionTypeCommon}
		}

		confidence := CalculateConfidence(0.1, mentions, "")

		assert.InDelta(t, 0.4, confidence, 0.0001)
	})

	t.Run("Clamped to one", func(t *testing.T) {
		mentions := []model.Mention{
			{Text: "X", Type: model.MentionTypeProper},
			{Text: "X", Type: model.MentionTypeProper},
			{Text: "X", Type: model.MentionTypeProper},
			{Text: "X", Type: model.MentionTypeProper},
		}

		confidence := CalculateConfidence(0.9, mentions, "https://en.wikipedia.org/wiki/X")

		assert.Equal(t, 1.0, confidence)
	})

	t.Run("No mentions", func(t *testing.T) {
		confidence := CalculateConfidence(0.3, nil, "")

		assert.InDelta(t, 0.3, confidence, 0.0001)
	})
}
