// Package export renders analysis results into consumer formats:
// indented JSON, CSV and HTML with highlighted entity mentions.
package export

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/salienza/salienza/helper"
	"github.com/salienza/salienza/model"
)

// ToJSON serializes a result as indented JSON.
func ToJSON(result *model.AnalysisResult) (string, error) {
	if err := result.Validate(); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", helper.NewError("marshalling analysis result", err)
	}
	return string(data), nil
}

// csvHeader is the fixed column set of the CSV export.
var csvHeader = []string{"Name", "Type", "Salience", "Mentions Count", "Wikipedia URL", "Confidence"}

// ToCSV renders one row per entity with the salience and confidence
// rounded to four decimals.
func ToCSV(result *model.AnalysisResult) (string, error) {
	if err := result.Validate(); err != nil {
		return "", err
	}
	if len(result.Entities) == 0 {
		return "No entities found", nil
	}

	rows := make([]string, 0, len(result.Entities)+1)
	rows = append(rows, strings.Join(csvHeader, ","))

	for _, entity := range result.Entities {
		row := []string{
			escapeCSVValue(entity.Name),
			escapeCSVValue(entity.TypeName),
			strconv.FormatFloat(entity.Salience, 'f', 4, 64),
			strconv.Itoa(len(entity.Mentions)),
			escapeCSVValue(entity.WikipediaURL),
			strconv.FormatFloat(entity.Confidence, 'f', 4, 64),
		}
		rows = append(rows, strings.Join(row, ","))
	}

	return strings.Join(rows, "\n"), nil
}

// escapeCSVValue quotes a value containing a comma, quote or newline
// and doubles embedded quotes.
func escapeCSVValue(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
