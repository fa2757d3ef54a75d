package pipeline

import (
	"fmt"

	"github.com/salienza/salienza/model"
)

// GenerateSuggestions derives actionable optimization hints from an
// entity's document-level classification and its salience factors. The
// rules fire independently; an entity can collect several suggestions.
func GenerateSuggestions(entity *model.Entity, classification model.SalienceClass, factors model.SalienceFactors) []model.Suggestion {
	var suggestions []model.Suggestion

	if factors.Frequency.Rating == model.FrequencyVeryLow || factors.Frequency.Rating == model.FrequencyLow {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionFrequency,
			Priority:    model.PriorityHigh,
			Icon:        "🔄",
			Title:       "Increase the frequency",
			Description: fmt.Sprintf("Mention %q more often in the text to raise its importance", entity.Name),
			Actionable:  fmt.Sprintf("Target: 4-6 mentions instead of %d", factors.Frequency.Count),
		})
	}

	if !factors.Position.InTitle && classification.Category != model.SalienceDominant {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionPosition,
			Priority:    model.PriorityHigh,
			Icon:        "📍",
			Title:       "Improve the placement",
			Description: fmt.Sprintf("Place %q in the title or in the first 100 characters", entity.Name),
			Actionable:  "Entities mentioned at the start carry more salience",
		})
	}

	if !factors.Position.InFirstParagraph {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionPosition,
			Priority:    model.PriorityMedium,
			Icon:        "📍",
			Title:       "Strengthen the introduction",
			Description: fmt.Sprintf("Mention %q in the first paragraph", entity.Name),
			Actionable:  "Early placement increases salience",
		})
	}

	if factors.MentionTypes.Quality == model.QualityLow {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionMentionType,
			Priority:    model.PriorityMedium,
			Icon:        "🔤",
			Title:       "Use as a proper noun",
			Description: fmt.Sprintf("Capitalize %q where possible", entity.Name),
			Actionable:  "Proper nouns carry more weight in the analysis",
		})
	}

	if classification.Category == model.SalienceMarginal || classification.Category == model.SaliencePresent {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionContext,
			Priority:    model.PriorityMedium,
			Icon:        "🎯",
			Title:       "Group related content",
			Description: fmt.Sprintf("Create sections dedicated to %q", entity.Name),
			Actionable:  "Grouping related information increases focus",
		})
	}

	if entity.WikipediaURL == "" && classification.Category != model.SalienceMarginal {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionAuthority,
			Priority:    model.PriorityLow,
			Icon:        "🔗",
			Title:       "Add authority",
			Description: fmt.Sprintf("%q could benefit from authoritative external links", entity.Name),
			Actionable:  "Links to authoritative sources increase credibility",
		})
	}

	if classification.Category == model.SalienceDominant || classification.Category == model.SalienceProminent {
		suggestions = append(suggestions, model.Suggestion{
			Type:        model.SuggestionPositive,
			Priority:    model.PriorityInfo,
			Icon:        "✅",
			Title:       "Excellent performance",
			Description: fmt.Sprintf("%q has excellent salience in the text", entity.Name),
			Actionable:  "Keep this strategy for other important entities",
		})
	}

	return suggestions
}
