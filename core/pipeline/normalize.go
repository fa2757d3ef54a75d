package pipeline

import (
	"math"

	"github.com/google/uuid"
	"github.com/salienza/salienza/model"
)

// NormalizeRawEntity maps a raw API entity to the internal Entity
// shape, filling defaults for missing fields and computing the initial
// confidence.
func NormalizeRawEntity(raw model.RawEntity) model.Entity {
	name := raw.Name
	if name == "" {
		name = "Unknown"
	}

	entityType := model.NormalizeEntityType(raw.Type)

	mentions := make([]model.Mention, 0, len(raw.Mentions))
	for _, m := range raw.Mentions {
		mentionType := model.MentionType(m.Type)
		if mentionType != model.MentionTypeProper {
			mentionType = model.MentionTypeCommon
		}
		offset := m.Text.BeginOffset
		if offset < 0 {
			offset = 0
		}
		mentions = append(mentions, model.Mention{
			Text:        m.Text.Content,
			Type:        mentionType,
			BeginOffset: offset,
		})
	}

	metadata := model.Metadata{}
	for key, value := range raw.Metadata {
		metadata[key] = value
	}

	entity := model.Entity{
		ID:           uuid.New(),
		Name:         name,
		Type:         entityType,
		TypeName:     entityType.DisplayName(),
		Salience:     raw.Salience,
		Mentions:     mentions,
		Metadata:     metadata,
		Color:        entityType.Color(),
		WikipediaURL: metadata.WikipediaURL(),
	}
	entity.Confidence = CalculateConfidence(entity.Salience, entity.Mentions, entity.WikipediaURL)

	return entity
}

// CalculateConfidence derives a confidence score in [0, 1] from
// salience, mention count, Wikipedia presence and proper noun usage:
// salience + min(0.1*mentions, 0.3) + 0.1 (wikipedia) + 0.1 (proper).
func CalculateConfidence(salience float64, mentions []model.Mention, wikipediaURL string) float64 {
	confidence := salience

	confidence += math.Min(float64(len(mentions))*0.1, 0.3)

	if wikipediaURL != "" {
		confidence += 0.1
	}

	for _, m := range mentions {
		if m.Type == model.MentionTypeProper {
			confidence += 0.1
			break
		}
	}

	return math.Min(confidence, 1.0)
}
