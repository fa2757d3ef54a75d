package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/salienza/salienza/helper"
	"github.com/salienza/salienza/model"
	"github.com/salienza/salienza/sql"
)

// AnalysesDBHandlerFunctions defines the interface for Analyses database operations.
type AnalysesDBHandlerFunctions interface {
	InsertAnalysis(analysis *model.Analysis) error
	SelectAnalysis(rid uuid.UUID) (*model.Analysis, error)
	SelectRecentAnalyses(lastCreatedAt *time.Time, limit int) ([]*model.Analysis, error)
	SelectAnalysesByLanguage(language string, limit int) ([]*model.Analysis, error)
	DeleteAnalysis(rid uuid.UUID) error
}

// AnalysesDBHandler handles analysis-related database operations
type AnalysesDBHandler struct {
	db *helper.Database
}

// NewAnalysesDBHandler creates a new analyses database handler.
// It initializes the database connection and loads analysis-related SQL functions.
// If force is true, it will reload the SQL functions even if they already exist.
func NewAnalysesDBHandler(db *helper.Database, force bool) (*AnalysesDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	analysesDbHandler := &AnalysesDBHandler{
		db: db,
	}

	err := sql.LoadAnalysesSql(analysesDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load analyses sql", err)
	}

	err = analysesDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized AnalysesDBHandler")

	return analysesDbHandler, nil
}

// CreateTable creates the 'analyses' table in the database.
// If the table already exists, it does not create it again.
// It also creates all necessary indexes.
func (h *AnalysesDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Use the SQL init() function to create all tables and indexes
	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_analyses();`)
	if err != nil {
		log.Panicf("error initializing analyses table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table analyses")

	return nil
}

// InsertAnalysis inserts a new analysis
func (h *AnalysesDBHandler) InsertAnalysis(analysis *model.Analysis) error {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_analysis($1, $2, $3, $4)`,
		analysis.Language,
		analysis.SourceText,
		analysis.EntityCount,
		analysis.Result,
	)

	err := row.Scan(
		&analysis.ID,
		&analysis.RID,
		&analysis.Language,
		&analysis.SourceText,
		&analysis.EntityCount,
		&analysis.Result,
		&analysis.CreatedAt,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectAnalysis retrieves an analysis by RID
func (h *AnalysesDBHandler) SelectAnalysis(rid uuid.UUID) (*model.Analysis, error) {
	analysis := &model.Analysis{}
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_analysis($1)`,
		rid,
	)

	err := row.Scan(
		&analysis.ID,
		&analysis.RID,
		&analysis.Language,
		&analysis.SourceText,
		&analysis.EntityCount,
		&analysis.Result,
		&analysis.CreatedAt,
	)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return analysis, nil
}

// SelectRecentAnalyses retrieves recent analyses with pagination
func (h *AnalysesDBHandler) SelectRecentAnalyses(lastCreatedAt *time.Time, limit int) ([]*model.Analysis, error) {
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_recent_analyses($1, $2)`,
		lastCreatedAt,
		limit,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var analyses []*model.Analysis
	for rows.Next() {
		analysis := &model.Analysis{}
		err := rows.Scan(
			&analysis.ID,
			&analysis.RID,
			&analysis.Language,
			&analysis.SourceText,
			&analysis.EntityCount,
			&analysis.Result,
			&analysis.CreatedAt,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		analyses = append(analyses, analysis)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return analyses, nil
}

// SelectAnalysesByLanguage retrieves analyses for a language
func (h *AnalysesDBHandler) SelectAnalysesByLanguage(language string, limit int) ([]*model.Analysis, error) {
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_analyses_by_language($1, $2)`,
		language,
		limit,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var analyses []*model.Analysis
	for rows.Next() {
		analysis := &model.Analysis{}
		err := rows.Scan(
			&analysis.ID,
			&analysis.RID,
			&analysis.Language,
			&analysis.SourceText,
			&analysis.EntityCount,
			&analysis.Result,
			&analysis.CreatedAt,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}

		analyses = append(analyses, analysis)
	}

	err = rows.Err()
	if err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return analyses, nil
}

// DeleteAnalysis deletes an analysis by RID
func (h *AnalysesDBHandler) DeleteAnalysis(rid uuid.UUID) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_analysis($1)`,
		rid,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}
	return nil
}
