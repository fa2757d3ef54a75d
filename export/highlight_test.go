package export

import (
	"strings"
	"testing"

	"github.com/salienza/salienza/model"
	"github.com/stretchr/testify/assert"
)

func TestHighlightEntities(t *testing.T) {
	t.Run("Single mention", func(t *testing.T) {
		text := "Rome is eternal."
		entities := []model.EnrichedEntity{
			enriched("Rome", model.EntityTypeLocation, 0.4, 0.6,
				model.Mention{Text: "Rome", Type: model.MentionTypeProper, BeginOffset: 0}),
		}

		highlighted := HighlightEntities(text, entities)

		assert.Contains(t, highlighted, `class="highlighted-entity location"`)
		assert.Contains(t, highlighted, `data-entity="Rome"`)
		assert.Contains(t, highlighted, `data-type="LOCATION"`)
		assert.Contains(t, highlighted, `data-salience="0.400"`)
		assert.Contains(t, highlighted, `>Rome</span> is eternal.`)
	})

	t.Run("Multiple mentions keep surrounding text intact", func(t *testing.T) {
		text := "Bach met Handel. Later Bach left."
		entities := []model.EnrichedEntity{
			enriched("Bach", model.EntityTypePerson, 0.5, 0.7,
				model.Mention{Text: "Bach", BeginOffset: 0},
				model.Mention{Text: "Bach", BeginOffset: 23}),
			enriched("Handel", model.EntityTypePerson, 0.3, 0.5,
				model.Mention{Text: "Handel", BeginOffset: 9}),
		}

		highlighted := HighlightEntities(text, entities)

		assert.Equal(t, 3, strings.Count(highlighted, "<span"))
		assert.Equal(t, 2, strings.Count(highlighted, ">Bach</span>"))
		assert.Equal(t, 1, strings.Count(highlighted, ">Handel</span>"))
		// The plain text segments survive in order.
		assert.Contains(t, highlighted, "</span> met ")
		assert.Contains(t, highlighted, "</span>. Later ")
		assert.True(t, strings.HasSuffix(highlighted, " left."))
	})

	t.Run("Mention text is HTML escaped", func(t *testing.T) {
		text := "a <b> c"
		entities := []model.EnrichedEntity{
			enriched("<b>", model.EntityTypeOther, 0.2, 0.2,
				model.Mention{Text: "<b>", BeginOffset: 2}),
		}

		highlighted := HighlightEntities(text, entities)

		assert.Contains(t, highlighted, ">&lt;b&gt;</span>")
		assert.Contains(t, highlighted, `data-entity="&lt;b&gt;"`)
	})

	t.Run("Out of range mentions are skipped", func(t *testing.T) {
		text := "short"
		entities := []model.EnrichedEntity{
			enriched("ghost", model.EntityTypeOther, 0.2, 0.2,
				model.Mention{Text: "ghost", BeginOffset: 100}),
		}

		highlighted := HighlightEntities(text, entities)

		assert.Equal(t, text, highlighted)
	})

	t.Run("Empty inputs pass through", func(t *testing.T) {
		assert.Equal(t, "", HighlightEntities("", nil))
		assert.Equal(t, "text", HighlightEntities("text", nil))
	})

	t.Run("No mentions leaves text untouched", func(t *testing.T) {
		entities := []model.EnrichedEntity{
			enriched("Rome", model.EntityTypeLocation, 0.4, 0.6),
		}

		highlighted := HighlightEntities("Rome is eternal.", entities)

		assert.Equal(t, "Rome is eternal.", highlighted)
	})
}
