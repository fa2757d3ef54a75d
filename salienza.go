// Package salienza analyzes the entity salience of a text: it extracts
// entities through a pluggable extractor, post-processes them through
// the pipeline and optionally persists the results.
package salienza

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/salienza/salienza/core/pipeline"
	"github.com/salienza/salienza/database"
	"github.com/salienza/salienza/extract"
	"github.com/salienza/salienza/helper"
	"github.com/salienza/salienza/model"
	loadSql "github.com/salienza/salienza/sql"
)

// Analyzer provides a unified interface to extraction, processing and
// optional persistence.
type Analyzer struct {
	DB        *helper.Database
	Analyses  *database.AnalysesDBHandler
	Extractor extract.Extractor
	Pipeline  *pipeline.Pipeline
	// Logging
	log *slog.Logger
}

// NewAnalyzer creates a new Analyzer without persistence. Results are
// computed in process and returned to the caller only.
func NewAnalyzer(extractor extract.Extractor) (*Analyzer, error) {
	if extractor == nil {
		return nil, helper.NewError("extractor validation", fmt.Errorf("extractor is nil"))
	}

	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	return &Analyzer{
		Extractor: extractor,
		Pipeline:  pipeline.NewPipeline(),
		log:       logger,
	}, nil
}

// NewAnalyzerWithStore creates a new Analyzer backed by a Postgres
// analyses store. Every stored analysis can later be listed and
// re-highlighted from its kept source text.
func NewAnalyzerWithStore(extractor extract.Extractor, config *helper.DatabaseConfiguration) (*Analyzer, error) {
	analyzer, err := NewAnalyzer(extractor)
	if err != nil {
		return nil, err
	}

	// Initialize database
	db := helper.NewDatabase("salienza", config, analyzer.log)
	err = loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database extensions", err)
	}

	// force=false to not reload if functions already exist
	analyses, err := database.NewAnalysesDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create analyses handler", err)
	}

	analyzer.DB = db
	analyzer.Analyses = analyses

	return analyzer, nil
}

// Close closes the database connection
func (a *Analyzer) Close() error {
	if a.DB != nil && a.DB.Instance != nil {
		return a.DB.Instance.Close()
	}
	return nil
}

// AnalyzeText extracts entities from text and runs the full processing
// pipeline over them. language is an ISO 639-1 code or "auto".
func (a *Analyzer) AnalyzeText(ctx context.Context, text string, language string, opts model.ProcessOptions) (*model.AnalysisResult, error) {
	err := extract.ValidateInput(text)
	if err != nil {
		return nil, helper.NewError("validate input", err)
	}

	response, err := a.Extractor.AnalyzeEntities(ctx, text, language)
	if err != nil {
		return nil, helper.NewError("analyze entities", err)
	}

	a.log.Info("Extracted entities", slog.Int("num_entities", len(response.Entities)), slog.String("language", response.Language))

	result := a.Pipeline.Process(response.Entities, response.Language, response.Text, opts)
	err = result.Validate()
	if err != nil {
		return nil, helper.NewError("validate result", err)
	}

	a.log.Info("Processed entities", slog.Int("total_entities", result.TotalEntities), slog.Int("original_count", result.OriginalCount))

	return result, nil
}

// AnalyzeAndStore runs AnalyzeText and persists the result together
// with the source text. Requires a store-backed Analyzer.
func (a *Analyzer) AnalyzeAndStore(ctx context.Context, text string, language string, opts model.ProcessOptions) (*model.Analysis, error) {
	if a.Analyses == nil {
		return nil, helper.NewError("store analysis", fmt.Errorf("analyses store not set, use NewAnalyzerWithStore"))
	}

	result, err := a.AnalyzeText(ctx, text, language, opts)
	if err != nil {
		return nil, err
	}

	analysis := &model.Analysis{
		Language:    result.Language,
		SourceText:  text,
		EntityCount: result.TotalEntities,
		Result:      model.StoredResult{AnalysisResult: *result},
	}

	err = a.Analyses.InsertAnalysis(analysis)
	if err != nil {
		return nil, helper.NewError("insert analysis", err)
	}

	a.log.Info("Stored analysis", slog.String("analysis_id", analysis.RID.String()), slog.Int("entity_count", analysis.EntityCount))

	return analysis, nil
}

// Analysis retrieves a stored analysis by RID
func (a *Analyzer) Analysis(rid uuid.UUID) (*model.Analysis, error) {
	if a.Analyses == nil {
		return nil, helper.NewError("select analysis", fmt.Errorf("analyses store not set, use NewAnalyzerWithStore"))
	}
	return a.Analyses.SelectAnalysis(rid)
}

// RecentAnalyses lists stored analyses newest first with pagination
func (a *Analyzer) RecentAnalyses(lastCreatedAt *time.Time, limit int) ([]*model.Analysis, error) {
	if a.Analyses == nil {
		return nil, helper.NewError("select recent analyses", fmt.Errorf("analyses store not set, use NewAnalyzerWithStore"))
	}
	return a.Analyses.SelectRecentAnalyses(lastCreatedAt, limit)
}

// AnalysesByLanguage lists stored analyses for one language
func (a *Analyzer) AnalysesByLanguage(language string, limit int) ([]*model.Analysis, error) {
	if a.Analyses == nil {
		return nil, helper.NewError("select analyses by language", fmt.Errorf("analyses store not set, use NewAnalyzerWithStore"))
	}
	return a.Analyses.SelectAnalysesByLanguage(language, limit)
}

// DeleteAnalysis deletes a stored analysis by RID
func (a *Analyzer) DeleteAnalysis(rid uuid.UUID) error {
	if a.Analyses == nil {
		return helper.NewError("delete analysis", fmt.Errorf("analyses store not set, use NewAnalyzerWithStore"))
	}
	return a.Analyses.DeleteAnalysis(rid)
}
