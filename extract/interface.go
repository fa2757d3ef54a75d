// Package extract provides entity extraction collaborators: a client
// for the Google Cloud Natural Language API and a local ONNX model
// based extractor. Both deliver raw entities for pipeline processing.
package extract

import (
	"context"
	"strings"

	"github.com/salienza/salienza/model"
)

// Extractor produces raw entities from a block of text. language is an
// ISO 639-1 code or "auto" for server-side detection.
type Extractor interface {
	AnalyzeEntities(ctx context.Context, text string, language string) (*model.ExtractionResponse, error)
}

// MaxInputLength is the maximum accepted input size in characters.
const MaxInputLength = 1000000

// Language is one supported input language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages returns the languages accepted by AnalyzeEntities.
func SupportedLanguages() []Language {
	return []Language{
		{Code: "auto", Name: "Auto-detect"},
		{Code: "it", Name: "Italian"},
		{Code: "en", Name: "English"},
		{Code: "es", Name: "Spanish"},
		{Code: "fr", Name: "French"},
		{Code: "de", Name: "German"},
		{Code: "pt", Name: "Portuguese"},
		{Code: "ru", Name: "Russian"},
		{Code: "ja", Name: "Japanese"},
		{Code: "ko", Name: "Korean"},
		{Code: "zh", Name: "Chinese"},
	}
}

// ValidateInput checks a text block before it is sent to an extractor.
func ValidateInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Message: "text input cannot be empty"}
	}
	if len([]rune(text)) > MaxInputLength {
		return &ValidationError{Message: "text input is too long (max 1,000,000 characters)"}
	}
	return nil
}
