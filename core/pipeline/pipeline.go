// Package pipeline implements the entity post-processing pipeline:
// normalization, stopword filtering, deduplication, salience
// classification, factor analysis and suggestion generation.
//
// The pipeline is pure in-process computation. It performs no I/O, holds
// no state across runs and every run returns a fresh result, so a single
// Pipeline value is safe for concurrent use.
package pipeline

import (
	"sort"

	"github.com/salienza/salienza/model"
)

// Pipeline processes raw extracted entities into an AnalysisResult.
type Pipeline struct{}

// NewPipeline creates a new processing pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Process runs the full pipeline over the raw entities of one
// extraction response. sourceText is the analyzed text and feeds the
// positional factor analysis; language selects the stopword set.
func (p *Pipeline) Process(raw []model.RawEntity, language string, sourceText string, opts model.ProcessOptions) *model.AnalysisResult {
	if len(raw) == 0 {
		return &model.AnalysisResult{
			Entities:      []model.EnrichedEntity{},
			Language:      language,
			TotalEntities: 0,
			EntityTypes:   map[model.EntityType]model.EntityTypeStats{},
			MaxSalience:   0,
			MinSalience:   0,
		}
	}

	processed := make([]model.Entity, 0, len(raw))
	for _, r := range raw {
		processed = append(processed, NormalizeRawEntity(r))
	}

	filtered := processed
	if opts.FilterStopwords {
		filtered = FilterStopwords(processed, language)
	}

	final := filtered
	if opts.Deduplicate {
		final = Deduplicate(filtered)
	}

	sorted := make([]model.Entity, len(final))
	copy(sorted, final)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Salience > sorted[j].Salience
	})

	enriched := p.enrich(sorted, sourceText)

	maxSalience, minSalience := salienceBounds(enriched)

	return &model.AnalysisResult{
		Entities:                 enriched,
		Language:                 language,
		TotalEntities:            len(enriched),
		EntityTypes:              groupByType(enriched),
		MaxSalience:              maxSalience,
		MinSalience:              minSalience,
		DeduplicationApplied:     opts.Deduplicate,
		StopwordFilteringApplied: opts.FilterStopwords,
		OriginalCount:            len(processed),
		FilteredCount:            len(filtered),
	}
}

// enrich adds classification, factors, suggestions and the practical
// score to every entity. Classification is computed against the full
// entity set of the document.
func (p *Pipeline) enrich(entities []model.Entity, sourceText string) []model.EnrichedEntity {
	enriched := make([]model.EnrichedEntity, 0, len(entities))
	for _, entity := range entities {
		classification := ClassifySalience(entity.Salience, entities)
		factors := AnalyzeSalienceFactors(&entity, sourceText)

		enriched = append(enriched, model.EnrichedEntity{
			Entity:                  entity,
			SalienceClassification:  classification,
			SalienceFactors:         factors,
			OptimizationSuggestions: GenerateSuggestions(&entity, classification, factors),
			PracticalScore:          classification.Score,
		})
	}
	return enriched
}

// groupByType aggregates entities per type with count and average
// salience.
func groupByType(entities []model.EnrichedEntity) map[model.EntityType]model.EntityTypeStats {
	grouped := map[model.EntityType]model.EntityTypeStats{}
	for _, entity := range entities {
		stats := grouped[entity.Type]
		stats.Count++
		stats.Entities = append(stats.Entities, entity)
		grouped[entity.Type] = stats
	}

	for entityType, stats := range grouped {
		total := 0.0
		for _, entity := range stats.Entities {
			total += entity.Salience
		}
		stats.AverageSalience = total / float64(stats.Count)
		grouped[entityType] = stats
	}

	return grouped
}

// salienceBounds returns max and min salience, 0/0 for an empty set.
func salienceBounds(entities []model.EnrichedEntity) (float64, float64) {
	if len(entities) == 0 {
		return 0, 0
	}
	maxSalience := entities[0].Salience
	minSalience := entities[0].Salience
	for _, entity := range entities[1:] {
		if entity.Salience > maxSalience {
			maxSalience = entity.Salience
		}
		if entity.Salience < minSalience {
			minSalience = entity.Salience
		}
	}
	return maxSalience, minSalience
}
