package model

import (
	"errors"
	"sort"
)

// EnrichedEntity is an Entity plus the intelligence fields added at the
// end of the pipeline. It is read-only once produced.
type EnrichedEntity struct {
	Entity
	SalienceClassification  SalienceClass   `json:"salience_classification"`
	SalienceFactors         SalienceFactors `json:"salience_factors"`
	OptimizationSuggestions []Suggestion    `json:"optimization_suggestions"`
	PracticalScore          int             `json:"practical_score"`
}

// EntityTypeStats aggregates the entities of one type.
type EntityTypeStats struct {
	Count           int              `json:"count"`
	Entities        []EnrichedEntity `json:"entities"`
	AverageSalience float64          `json:"average_salience"`
}

// AnalysisResult is the final output of one pipeline run. Entities are
// sorted by descending salience. The result is immutable once built.
type AnalysisResult struct {
	Entities                 []EnrichedEntity               `json:"entities"`
	Language                 string                         `json:"language"`
	TotalEntities            int                            `json:"total_entities"`
	EntityTypes              map[EntityType]EntityTypeStats `json:"entity_types"`
	MaxSalience              float64                        `json:"max_salience"`
	MinSalience              float64                        `json:"min_salience"`
	DeduplicationApplied     bool                           `json:"deduplication_applied"`
	StopwordFilteringApplied bool                           `json:"stopword_filtering_applied"`
	OriginalCount            int                            `json:"original_count"`
	FilteredCount            int                            `json:"filtered_count"`
}

// Validate rejects a structurally broken result before it reaches a
// presentation or export consumer.
func (r *AnalysisResult) Validate() error {
	if r == nil {
		return errors.New("analysis result is nil")
	}
	if r.Entities == nil {
		return errors.New("analysis result has no entities sequence")
	}
	return nil
}

// TypeCount summarizes one entity type for reporting.
type TypeCount struct {
	Type            EntityType `json:"type"`
	Name            string     `json:"name"`
	Count           int        `json:"count"`
	AverageSalience float64    `json:"average_salience"`
}

// AnalysisStats is a compact document-level summary of a result.
type AnalysisStats struct {
	TotalEntities        int         `json:"total_entities"`
	TopEntityTypes       []TypeCount `json:"top_entity_types"`
	AverageSalience      float64     `json:"average_salience"`
	HighSalienceEntities int         `json:"high_salience_entities"`
}

// Stats computes summary statistics over the result: the five most
// frequent entity types, the document average salience and the number
// of entities with salience above 0.5.
func (r *AnalysisResult) Stats() AnalysisStats {
	if len(r.Entities) == 0 {
		return AnalysisStats{TopEntityTypes: []TypeCount{}}
	}

	totalSalience := 0.0
	highSalience := 0
	for _, e := range r.Entities {
		totalSalience += e.Salience
		if e.Salience > 0.5 {
			highSalience++
		}
	}

	topTypes := make([]TypeCount, 0, len(r.EntityTypes))
	for entityType, stats := range r.EntityTypes {
		topTypes = append(topTypes, TypeCount{
			Type:            entityType,
			Name:            entityType.DisplayName(),
			Count:           stats.Count,
			AverageSalience: stats.AverageSalience,
		})
	}
	sort.SliceStable(topTypes, func(i, j int) bool {
		if topTypes[i].Count != topTypes[j].Count {
			return topTypes[i].Count > topTypes[j].Count
		}
		return topTypes[i].Type < topTypes[j].Type
	})
	if len(topTypes) > 5 {
		topTypes = topTypes[:5]
	}

	return AnalysisStats{
		TotalEntities:        len(r.Entities),
		TopEntityTypes:       topTypes,
		AverageSalience:      totalSalience / float64(len(r.Entities)),
		HighSalienceEntities: highSalience,
	}
}
