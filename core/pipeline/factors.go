package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/salienza/salienza/model"
)

// AnalyzeSalienceFactors computes the explanatory sub-scores for one
// entity against the source text it was extracted from.
func AnalyzeSalienceFactors(entity *model.Entity, sourceText string) model.SalienceFactors {
	return model.SalienceFactors{
		Frequency:    analyzeFrequency(entity),
		Position:     analyzePosition(entity, sourceText),
		Context:      analyzeContext(entity, sourceText),
		MentionTypes: analyzeMentionTypes(entity),
		Cooccurrence: analyzeCooccurrence(),
	}
}

func analyzeFrequency(entity *model.Entity) model.FrequencyFactor {
	count := len(entity.Mentions)

	var rating model.FrequencyRating
	var description string
	switch {
	case count >= 8:
		rating = model.FrequencyHigh
		description = fmt.Sprintf("Excellent frequency (%d mentions)", count)
	case count >= 4:
		rating = model.FrequencyMedium
		description = fmt.Sprintf("Good frequency (%d mentions)", count)
	case count >= 2:
		rating = model.FrequencyLow
		description = fmt.Sprintf("Low frequency (%d mentions)", count)
	default:
		rating = model.FrequencyVeryLow
		description = fmt.Sprintf("Very low frequency (%d mention)", count)
	}

	return model.FrequencyFactor{
		Count:       count,
		Rating:      rating,
		Description: description,
		Score:       math.Min(float64(count)*10, 100),
	}
}

func analyzePosition(entity *model.Entity, sourceText string) model.PositionFactor {
	textLength := len(sourceText)
	positions := make([]model.MentionPosition, 0, len(entity.Mentions))
	scoreSum := 0.0
	inTitle := false
	inFirstParagraph := false

	for _, mention := range entity.Mentions {
		offset := mention.BeginOffset
		relative := 0.0
		if textLength > 0 {
			relative = float64(offset) / float64(textLength)
		}

		switch {
		case offset < 100:
			// Title or opening (first 100 characters)
			inTitle = true
			scoreSum += 100
		case textLength > 0 && relative < 0.2:
			// First paragraph (first 20% of the text)
			inFirstParagraph = true
			scoreSum += 80
		case textLength > 0 && relative < 0.5:
			scoreSum += 60
		default:
			scoreSum += 30
		}

		positions = append(positions, model.MentionPosition{
			Offset:   offset,
			Relative: relative,
			Text:     mention.Text,
		})
	}

	averageScore := 0.0
	if len(entity.Mentions) > 0 {
		averageScore = scoreSum / float64(len(entity.Mentions))
	}

	var parts []string
	if inTitle {
		parts = append(parts, "In the title/opening")
	}
	if inFirstParagraph {
		parts = append(parts, "In the first paragraph")
	}
	if len(parts) == 0 {
		parts = append(parts, "Distributed through the text")
	}

	return model.PositionFactor{
		InTitle:          inTitle,
		InFirstParagraph: inFirstParagraph,
		AverageScore:     averageScore,
		Description:      strings.Join(parts, ", "),
		Positions:        positions,
	}
}

func analyzeContext(entity *model.Entity, sourceText string) model.ContextFactor {
	contexts := make([]model.MentionContext, 0, len(entity.Mentions))

	for _, mention := range entity.Mentions {
		start := mention.BeginOffset - 50
		if start < 0 {
			start = 0
		}
		if start > len(sourceText) {
			start = len(sourceText)
		}
		mentionEnd := mention.BeginOffset + len(mention.Text)
		if mentionEnd > len(sourceText) {
			mentionEnd = len(sourceText)
		}
		end := mentionEnd + 50
		if end > len(sourceText) {
			end = len(sourceText)
		}
		mentionStart := mention.BeginOffset
		if mentionStart > len(sourceText) {
			mentionStart = len(sourceText)
		}
		if mentionStart < start {
			mentionStart = start
		}

		contexts = append(contexts, model.MentionContext{
			Text:       sourceText[start:end],
			BeforeText: sourceText[start:mentionStart],
			AfterText:  sourceText[mentionEnd:end],
		})
	}

	return model.ContextFactor{
		Contexts:       contexts,
		UniqueContexts: len(contexts),
		Description:    fmt.Sprintf("Appears in %d different contexts", len(contexts)),
	}
}

func analyzeMentionTypes(entity *model.Entity) model.MentionTypeFactor {
	proper := entity.ProperMentionCount()
	common := entity.CommonMentionCount()
	total := len(entity.Mentions)

	if total == 0 {
		return model.MentionTypeFactor{
			Quality:     model.QualityLow,
			Description: "No mentions",
		}
	}

	properRatio := float64(proper) / float64(total)

	var quality model.QualityRating
	var description string
	switch {
	case properRatio >= 0.7:
		quality = model.QualityHigh
		description = fmt.Sprintf("Mostly proper noun (%d/%d)", proper, total)
	case properRatio >= 0.3:
		quality = model.QualityMedium
		description = fmt.Sprintf("Mixed proper/common noun (%d/%d)", proper, total)
	default:
		quality = model.QualityLow
		description = fmt.Sprintf("Mostly common noun (%d/%d)", proper, total)
	}

	return model.MentionTypeFactor{
		Proper:      proper,
		Common:      common,
		ProperRatio: properRatio,
		Quality:     quality,
		Description: description,
	}
}

// analyzeCooccurrence is a placeholder for nearby-entity analysis.
// TODO: populate NearbyEntities from other mentions in the same context
// windows once the pipeline carries the full entity set down here.
func analyzeCooccurrence() model.CooccurrenceFactor {
	return model.CooccurrenceFactor{
		Description:    "Co-occurrence analysis available",
		NearbyEntities: []string{},
	}
}
