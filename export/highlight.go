package export

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/salienza/salienza/model"
)

// highlightMention is one mention flattened with its owning entity's
// display attributes.
type highlightMention struct {
	beginOffset int
	endOffset   int
	entityName  string
	entityType  model.EntityType
	typeName    string
	salience    float64
}

// HighlightEntities wraps every entity mention of the text in an HTML
// span carrying the entity attributes. Mentions are applied in reverse
// offset order so earlier offsets stay valid while the text grows.
// Mentions pointing outside the text are skipped.
func HighlightEntities(text string, entities []model.EnrichedEntity) string {
	if text == "" || len(entities) == 0 {
		return text
	}

	var mentions []highlightMention
	for _, entity := range entities {
		for _, mention := range entity.Mentions {
			end := mention.BeginOffset + len(mention.Text)
			if mention.BeginOffset < 0 || end > len(text) {
				continue
			}
			mentions = append(mentions, highlightMention{
				beginOffset: mention.BeginOffset,
				endOffset:   end,
				entityName:  entity.Name,
				entityType:  entity.Type,
				typeName:    entity.TypeName,
				salience:    entity.Salience,
			})
		}
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].beginOffset > mentions[j].beginOffset
	})

	highlighted := text
	for _, mention := range mentions {
		if mention.endOffset > len(highlighted) {
			continue
		}
		before := highlighted[:mention.beginOffset]
		inner := highlighted[mention.beginOffset:mention.endOffset]
		after := highlighted[mention.endOffset:]

		highlighted = before + highlightSpan(mention, inner) + after
	}

	return highlighted
}

func highlightSpan(mention highlightMention, inner string) string {
	salience := strconv.FormatFloat(mention.salience, 'f', 3, 64)
	return fmt.Sprintf(
		`<span class="highlighted-entity %v" data-entity="%v" data-type="%v" data-salience="%v" title="%v (%v, Salience: %v)">%v</span>`,
		strings.ToLower(string(mention.entityType)),
		html.EscapeString(mention.entityName),
		html.EscapeString(string(mention.entityType)),
		salience,
		html.EscapeString(mention.entityName),
		html.EscapeString(mention.typeName),
		salience,
		html.EscapeString(inner),
	)
}
