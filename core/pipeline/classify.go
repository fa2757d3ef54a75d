package pipeline

import (
	"sort"

	"github.com/salienza/salienza/model"
)

// ClassifySalience assigns a salience tier to a salience value within
// the entity set of one document. Each tier is reached either by an
// absolute threshold or by percentile rank, evaluated top-down.
func ClassifySalience(salience float64, allEntities []model.Entity) model.SalienceClass {
	percentile := saliencePercentile(salience, allEntities)

	switch {
	case salience >= 0.15 || percentile <= 5:
		return model.SalienceClass{
			Category:    model.SalienceDominant,
			Label:       "Dominant",
			Icon:        "🔥",
			Description: "Central entity of the text",
			Color:       "#e53e3e",
			Score:       100,
		}
	case salience >= 0.08 || percentile <= 15:
		return model.SalienceClass{
			Category:    model.SalienceProminent,
			Label:       "Prominent",
			Icon:        "⭐",
			Description: "Very important entity",
			Color:       "#dd6b20",
			Score:       85,
		}
	case salience >= 0.04 || percentile <= 35:
		return model.SalienceClass{
			Category:    model.SalienceRelevant,
			Label:       "Relevant",
			Icon:        "📈",
			Description: "Significant entity",
			Color:       "#38a169",
			Score:       65,
		}
	case salience >= 0.02 || percentile <= 60:
		return model.SalienceClass{
			Category:    model.SaliencePresent,
			Label:       "Present",
			Icon:        "📊",
			Description: "Mentioned entity",
			Color:       "#3182ce",
			Score:       45,
		}
	default:
		return model.SalienceClass{
			Category:    model.SalienceMarginal,
			Label:       "Marginal",
			Icon:        "👻",
			Description: "Low relevance entity",
			Color:       "#718096",
			Score:       20,
		}
	}
}

// saliencePercentile is the position of a salience value in the
// descending sorted salience list of the document, as a fraction of the
// list length times 100. Ties resolve to the first matching index.
func saliencePercentile(salience float64, allEntities []model.Entity) float64 {
	if len(allEntities) == 0 {
		return 0
	}

	saliences := make([]float64, 0, len(allEntities))
	for _, entity := range allEntities {
		saliences = append(saliences, entity.Salience)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(saliences)))

	index := len(saliences)
	for i, s := range saliences {
		if s == salience {
			index = i
			break
		}
	}

	return float64(index) / float64(len(saliences)) * 100
}
