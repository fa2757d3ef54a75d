package pipeline

import (
	"testing"

	"github.com/salienza/salienza/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidate(t *testing.T) {
	t.Run("Single entity passes through unchanged", func(t *testing.T) {
		entity := model.Entity{Name: "Solo", Type: model.EntityTypePerson, Salience: 0.3}

		consolidated := Consolidate([]model.Entity{entity})

		assert.Equal(t, entity, consolidated)
		assert.False(t, consolidated.IsDeduplicated)
	})

	t.Run("Type follows the most salient member", func(t *testing.T) {
		group := []model.Entity{
			{Name: "apple", Type: model.EntityTypeConsumerGood, Salience: 0.1},
			{Name: "Apple", Type: model.EntityTypeOrganization, Salience: 0.5},
		}

		consolidated := Consolidate(group)

		assert.Equal(t, model.EntityTypeOrganization, consolidated.Type)
		assert.True(t, consolidated.IsDeduplicated)
		assert.Equal(t, 2, consolidated.OriginalEntities)
		assert.Equal(t, []string{"apple", "Apple"}, consolidated.OriginalNames)
	})

	t.Run("Wikipedia-backed name wins", func(t *testing.T) {
		group := []model.Entity{
			{
				Name: "Johann Sebastian Bach", Type: model.EntityTypePerson, Salience: 0.6,
				Mentions: []model.Mention{
					{Text: "Johann Sebastian Bach", Type: model.MentionTypeProper, BeginOffset: 0},
					{Text: "Johann Sebastian Bach", Type: model.MentionTypeProper, BeginOffset: 300},
				},
			},
			{
				Name: "Bach", Type: model.EntityTypePerson, Salience: 0.1,
				WikipediaURL: "https://en.wikipedia.org/wiki/Johann_Sebastian_Bach",
				Mentions: []model.Mention{
					{Text: "Bach", Type: model.MentionTypeProper, BeginOffset: 150},
				},
			},
		}

		consolidated := Consolidate(group)

		assert.Equal(t, "Bach", consolidated.Name)
	})

	t.Run("Mentions are combined, deduplicated and sorted", func(t *testing.T) {
		group := []model.Entity{
			{
				Name: "Rome", Type: model.EntityTypeLocation, Salience: 0.3,
				Mentions: []model.Mention{
					{Text: "Rome", Type: model.MentionTypeProper, BeginOffset: 200},
					{Text: "Rome", Type: model.MentionTypeProper, BeginOffset: 10},
				},
			},
			{
				Name: "Rome", Type: model.EntityTypeLocation, Salience: 0.2,
				Mentions: []model.Mention{
					{Text: "Rome", Type: model.MentionTypeProper, BeginOffset: 10},
					{Text: "the city", Type: model.MentionTypeCommon, BeginOffset: 90},
				},
			},
		}

		consolidated := Consolidate(group)

		require.Equal(t, 3, len(consolidated.Mentions))
		assert.Equal(t, 10, consolidated.Mentions[0].BeginOffset)
		assert.Equal(t, 90, consolidated.Mentions[1].BeginOffset)
		assert.Equal(t, 200, consolidated.Mentions[2].BeginOffset)
	})

	t.Run("Salience is a confidence weighted average", func(t *testing.T) {
		group := []model.Entity{
			{Name: "a", Type: model.EntityTypeOther, Salience: 0.4, Confidence: 0.8},
			{Name: "b", Type: model.EntityTypeOther, Salience: 0.2, Confidence: 0.2},
		}

		consolidated := Consolidate(group)

		// (0.4*0.8 + 0.2*0.2) / (0.8 + 0.2) = 0.36
		assert.InDelta(t, 0.36, consolidated.Salience, 0.0001)
	})

	t.Run("Members without confidence weigh one", func(t *testing.T) {
		group := []model.Entity{
			{Name: "a", Type: model.EntityTypeOther, Salience: 0.4},
			{Name: "b", Type: model.EntityTypeOther, Salience: 0.2},
		}

		consolidated := Consolidate(group)

		assert.InDelta(t, 0.3, consolidated.Salience, 0.0001)
	})

	t.Run("Best metadata is a fresh copy", func(t *testing.T) {
		richMetadata := model.Metadata{
			model.MetadataKeyWikipediaURL: "https://en.wikipedia.org/wiki/Rome",
			model.MetadataKeyMID:          "/m/06c62",
		}
		group := []model.Entity{
			{Name: "Rome", Type: model.EntityTypeLocation, Salience: 0.3},
			{Name: "Rome", Type: model.EntityTypeLocation, Salience: 0.2, Metadata: richMetadata},
		}

		consolidated := Consolidate(group)

		assert.Equal(t, "https://en.wikipedia.org/wiki/Rome", consolidated.Metadata.WikipediaURL())
		assert.Equal(t, "https://en.wikipedia.org/wiki/Rome", consolidated.WikipediaURL)

		consolidated.Metadata["extra"] = "value"
		assert.NotContains(t, richMetadata, "extra", "Consolidation must not share metadata maps")
	})

	t.Run("Confidence is recomputed and bounded", func(t *testing.T) {
		group := []model.Entity{
			{
				Name: "Rome", Type: model.EntityTypeLocation, Salience: 0.9,
				Mentions: []model.Mention{
					{Text: "Rome", Type: model.MentionTypeProper, BeginOffset: 0},
					{Text: "Rome", Type: model.MentionTypeProper, BeginOffset: 50},
				},
				Metadata: model.Metadata{model.MetadataKeyWikipediaURL: "https://en.wikipedia.org/wiki/Rome"},
			},
			{
				Name: "rome", Type: model.EntityTypeLocation, Salience: 0.8,
				Mentions: []model.Mention{
					{Text: "rome", Type: model.MentionTypeCommon, BeginOffset: 120},
				},
			},
		}

		consolidated := Consolidate(group)

		assert.LessOrEqual(t, consolidated.Confidence, 1.0)
		assert.Greater(t, consolidated.Confidence, 0.0)
	})
}

func TestChooseBestName(t *testing.T) {
	t.Run("More specific professional term wins", func(t *testing.T) {
		group := []model.Entity{
			{Name: "coach", Type: model.EntityTypeOther, Salience: 0.3},
			{Name: "life coach", Type: model.EntityTypeOther, Salience: 0.2},
		}

		assert.Equal(t, "life coach", chooseBestName(group))
	})

	t.Run("First member wins on equal scores", func(t *testing.T) {
		group := []model.Entity{
			{Name: "alpha", Type: model.EntityTypeOther, Salience: 0.2},
			{Name: "gamma", Type: model.EntityTypeOther, Salience: 0.2},
		}

		assert.Equal(t, "alpha", chooseBestName(group))
	})
}
