package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/salienza/salienza/helper"
)

// StoredResult wraps an AnalysisResult for JSONB storage.
type StoredResult struct {
	AnalysisResult
}

// Value implements the driver.Valuer interface for database storage
func (r StoredResult) Value() (driver.Value, error) {
	return json.Marshal(r.AnalysisResult)
}

// Scan implements the sql.Scanner interface for database retrieval
func (r *StoredResult) Scan(value interface{}) error {
	if value == nil {
		r.AnalysisResult = AnalysisResult{}
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return helper.NewError("byte assertion", errors.New("type assertion to []byte failed"))
	}

	return json.Unmarshal(b, &r.AnalysisResult)
}

// Analysis is one persisted analysis run. SourceText keeps the analyzed
// text for later re-highlighting; Result holds the full pipeline output.
type Analysis struct {
	ID          int          `json:"id"`
	RID         uuid.UUID    `json:"rid"`
	Language    string       `json:"language"`
	SourceText  string       `json:"source_text"`
	EntityCount int          `json:"entity_count"`
	Result      StoredResult `json:"result"`
	CreatedAt   time.Time    `json:"created_at"`
}
