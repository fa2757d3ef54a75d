package pipeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/salienza/salienza/model"
)

// specificProfessionalTerms mark names that are typically more specific
// than their group siblings (life coach vs coach).
var specificProfessionalTerms = []string{
	"life coach", "business coach", "executive coach", "personal trainer",
	"project manager", "product manager", "marketing manager",
}

// Consolidate merges a group of same-entity candidates into one
// canonical entity: best name, best metadata, combined mentions and a
// confidence-weighted salience. The result owns fresh mention and
// metadata collections.
func Consolidate(group []model.Entity) model.Entity {
	if len(group) == 1 {
		return group[0]
	}

	primary := primaryBySalience(group)
	bestName := chooseBestName(group)
	mentions := combineMentions(group)
	salience := combineSalience(group)
	metadata := chooseBestMetadata(group)
	wikipediaURL := metadata.WikipediaURL()

	originalNames := make([]string, 0, len(group))
	for _, entity := range group {
		originalNames = append(originalNames, entity.Name)
	}

	return model.Entity{
		ID:           uuid.New(),
		Name:         bestName,
		Type:         primary.Type,
		TypeName:     primary.TypeName,
		Salience:     salience,
		Mentions:     mentions,
		Metadata:     metadata,
		Color:        primary.Color,
		WikipediaURL: wikipediaURL,
		Confidence:   CalculateConfidence(salience, mentions, wikipediaURL),

		IsDeduplicated:   true,
		OriginalEntities: len(group),
		OriginalNames:    originalNames,
	}
}

// primaryBySalience returns the group member with the highest original
// salience, first-seen on ties.
func primaryBySalience(group []model.Entity) *model.Entity {
	primary := &group[0]
	for i := 1; i < len(group); i++ {
		if group[i].Salience > primary.Salience {
			primary = &group[i]
		}
	}
	return primary
}

// chooseBestName scores every member name and returns the winner.
// Wikipedia-backed names dominate, then specificity, proper noun usage,
// length, salience and mention count. Ties keep the earlier member.
func chooseBestName(group []model.Entity) string {
	bestName := group[0].Name
	bestScore := 0.0

	for _, entity := range group {
		score := 0.0

		// Wikipedia URL bonus (highest priority)
		if entity.WikipediaURL != "" || entity.Metadata.WikipediaURL() != "" {
			score += 1000
		}

		score += specificityScore(entity.Name, group)
		score += float64(entity.ProperMentionCount()) * 50
		score += float64(len(entity.Name)) * 2
		score += entity.Salience * 100
		score += float64(len(entity.Mentions)) * 10

		if score > bestScore {
			bestScore = score
			bestName = entity.Name
		}
	}

	return bestName
}

// specificityScore rewards names that contain other group member names
// (more specific), compound names and known specific professional
// terms.
func specificityScore(entityName string, group []model.Entity) float64 {
	name := strings.ToLower(entityName)
	score := 0.0

	for _, other := range group {
		otherName := strings.ToLower(other.Name)
		if otherName != name && strings.Contains(name, otherName) {
			score += 200
		}
	}

	score += float64(len(strings.Fields(name))) * 20

	for _, term := range specificProfessionalTerms {
		if strings.Contains(name, term) {
			score += 100
			break
		}
	}

	return score
}

// combineMentions unions all member mentions, de-duplicated by
// (text, beginOffset), sorted ascending by offset.
func combineMentions(group []model.Entity) []model.Mention {
	seen := map[string]struct{}{}
	var mentions []model.Mention

	for _, entity := range group {
		for _, mention := range entity.Mentions {
			key := mentionKey(mention)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			mentions = append(mentions, mention)
		}
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].BeginOffset < mentions[j].BeginOffset
	})

	return mentions
}

func mentionKey(m model.Mention) string {
	return m.Text + "|" + strconv.Itoa(m.BeginOffset)
}

// combineSalience computes the confidence-weighted average salience of
// the group. Members without a confidence weigh 1.
func combineSalience(group []model.Entity) float64 {
	totalWeighted := 0.0
	totalWeight := 0.0

	for _, entity := range group {
		weight := entity.Confidence
		if weight == 0 {
			weight = 1
		}
		totalWeighted += entity.Salience * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}
	return totalWeighted / totalWeight
}

// chooseBestMetadata picks the member metadata with the most value:
// wikipedia_url, then mid, then key count. The result is a fresh copy.
func chooseBestMetadata(group []model.Entity) model.Metadata {
	var bestMetadata model.Metadata
	bestScore := 0

	for _, entity := range group {
		score := 0
		if entity.Metadata.WikipediaURL() != "" {
			score += 100
		}
		if entity.Metadata[model.MetadataKeyMID] != "" {
			score += 50
		}
		score += len(entity.Metadata) * 5

		if score > bestScore {
			bestScore = score
			bestMetadata = entity.Metadata
		}
	}

	copied := model.Metadata{}
	for key, value := range bestMetadata {
		copied[key] = value
	}
	return copied
}
