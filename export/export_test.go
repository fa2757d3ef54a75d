package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/salienza/salienza/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enriched(name string, entityType model.EntityType, salience, confidence float64, mentions ...model.Mention) model.EnrichedEntity {
	return model.EnrichedEntity{
		Entity: model.Entity{
			Name:       name,
			Type:       entityType,
			TypeName:   entityType.DisplayName(),
			Salience:   salience,
			Confidence: confidence,
			Mentions:   mentions,
		},
	}
}

func resultWith(entities ...model.EnrichedEntity) *model.AnalysisResult {
	if entities == nil {
		entities = []model.EnrichedEntity{}
	}
	return &model.AnalysisResult{
		Entities:      entities,
		Language:      "en",
		TotalEntities: len(entities),
		EntityTypes:   map[model.EntityType]model.EntityTypeStats{},
	}
}

func TestToJSON(t *testing.T) {
	t.Run("Round trips through encoding/json", func(t *testing.T) {
		result := resultWith(
			enriched("Rome", model.EntityTypeLocation, 0.4, 0.6,
				model.Mention{Text: "Rome", Type: model.MentionTypeProper, BeginOffset: 0}),
		)

		out, err := ToJSON(result)

		require.NoError(t, err)

		var decoded model.AnalysisResult
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, 1, decoded.TotalEntities)
		assert.Equal(t, "Rome", decoded.Entities[0].Name)
	})

	t.Run("Output is indented", func(t *testing.T) {
		out, err := ToJSON(resultWith())

		require.NoError(t, err)
		assert.Contains(t, out, "\n  ")
	})

	t.Run("Nil entities are rejected", func(t *testing.T) {
		_, err := ToJSON(&model.AnalysisResult{})

		assert.Error(t, err)
	})
}

func TestToCSV(t *testing.T) {
	t.Run("Header and rows", func(t *testing.T) {
		result := resultWith(
			enriched("Rome", model.EntityTypeLocation, 0.4, 0.65,
				model.Mention{Text: "Rome", BeginOffset: 0},
				model.Mention{Text: "Rome", BeginOffset: 50}),
			enriched("Bach", model.EntityTypePerson, 0.2, 0.3,
				model.Mention{Text: "Bach", BeginOffset: 10}),
		)
		result.Entities[0].WikipediaURL = "https://en.wikipedia.org/wiki/Rome"

		out, err := ToCSV(result)

		require.NoError(t, err)
		lines := strings.Split(out, "\n")
		require.Equal(t, 3, len(lines))
		assert.Equal(t, "Name,Type,Salience,Mentions Count,Wikipedia URL,Confidence", lines[0])
		assert.Equal(t, "Rome,Location,0.4000,2,https://en.wikipedia.org/wiki/Rome,0.6500", lines[1])
		assert.Equal(t, "Bach,Person,0.2000,1,,0.3000", lines[2])
	})

	t.Run("Values with commas and quotes are escaped", func(t *testing.T) {
		result := resultWith(
			enriched(`Acme, Inc. "The Best"`, model.EntityTypeOrganization, 0.5, 0.5),
		)

		out, err := ToCSV(result)

		require.NoError(t, err)
		lines := strings.Split(out, "\n")
		assert.True(t, strings.HasPrefix(lines[1], `"Acme, Inc. ""The Best"""`), "got %q", lines[1])
	})

	t.Run("Empty result", func(t *testing.T) {
		out, err := ToCSV(resultWith())

		require.NoError(t, err)
		assert.Equal(t, "No entities found", out)
	})

	t.Run("Nil entities are rejected", func(t *testing.T) {
		_, err := ToCSV(&model.AnalysisResult{})

		assert.Error(t, err)
	})
}

func TestEscapeCSVValue(t *testing.T) {
	t.Run("Plain value passes through", func(t *testing.T) {
		assert.Equal(t, "O'Brien", escapeCSVValue("O'Brien"))
	})

	t.Run("Comma forces quoting", func(t *testing.T) {
		assert.Equal(t, `"a,b"`, escapeCSVValue("a,b"))
	})

	t.Run("Quotes are doubled", func(t *testing.T) {
		assert.Equal(t, `"say ""hi"""`, escapeCSVValue(`say "hi"`))
	})

	t.Run("Newline forces quoting", func(t *testing.T) {
		assert.Equal(t, "\"a\nb\"", escapeCSVValue("a\nb"))
	})
}
