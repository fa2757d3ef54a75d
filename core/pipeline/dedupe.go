package pipeline

import (
	"github.com/salienza/salienza/model"
)

// Deduplicate collapses an entity list in two passes: exact grouping on
// the normalized name plus type, then greedy similarity grouping over
// the remainder. Group order follows input order; the output is never
// longer than the input.
func Deduplicate(entities []model.Entity) []model.Entity {
	exact := deduplicateExact(entities)
	return deduplicateSimilar(exact)
}

// deduplicateExact groups entities sharing the key
// normalize(name)+"|"+type and consolidates multi-member groups.
// Groups are kept in first-seen order.
func deduplicateExact(entities []model.Entity) []model.Entity {
	groupIndex := map[string]int{}
	var groups [][]model.Entity

	for _, entity := range entities {
		key := NormalizeEntityName(entity.Name) + "|" + string(entity.Type)
		if idx, ok := groupIndex[key]; ok {
			groups[idx] = append(groups[idx], entity)
		} else {
			groupIndex[key] = len(groups)
			groups = append(groups, []model.Entity{entity})
		}
	}

	result := make([]model.Entity, 0, len(groups))
	for _, group := range groups {
		if len(group) == 1 {
			result = append(result, group[0])
		} else {
			result = append(result, Consolidate(group))
		}
	}
	return result
}

// deduplicateSimilar scans entities in order; each not-yet-processed
// entity anchors a group and greedily absorbs every later unprocessed
// entity similar to the anchor. Similarity is not transitive, so two
// absorbed members need not be similar to each other, only to the
// anchor.
func deduplicateSimilar(entities []model.Entity) []model.Entity {
	result := make([]model.Entity, 0, len(entities))
	processed := make([]bool, len(entities))

	for i := range entities {
		if processed[i] {
			continue
		}
		processed[i] = true

		group := []model.Entity{entities[i]}
		for j := i + 1; j < len(entities); j++ {
			if processed[j] {
				continue
			}
			if AreSimilar(&entities[i], &entities[j]) {
				group = append(group, entities[j])
				processed[j] = true
			}
		}

		if len(group) == 1 {
			result = append(result, entities[i])
		} else {
			result = append(result, Consolidate(group))
		}
	}

	return result
}
