package extract

import (
	"context"
	"errors"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/salienza/salienza/helper"
	"github.com/salienza/salienza/model"
)

// nerTypeMapping maps distilbert-NER labels to API entity types.
var nerTypeMapping = map[string]string{
	"PER":  "PERSON",
	"LOC":  "LOCATION",
	"ORG":  "ORGANIZATION",
	"MISC": "OTHER",
}

// LocalExtractor runs named entity recognition on a local ONNX model.
// It needs no API key and no network after the first model download.
// Salience is approximated from the mention frequency share, so results
// are coarser than the remote API's.
type LocalExtractor struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
}

// NewLocalExtractor downloads the NER model if needed and prepares a
// token classification pipeline.
func NewLocalExtractor() (*LocalExtractor, error) {
	modelPath, err := helper.PrepareModel("KnightsAnalytics/distilbert-NER", "model.onnx")
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, helper.NewError("creating hugot session", err)
	}

	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "salienza-ner",
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}),
		},
	}
	nerPipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, helper.NewError("creating NER pipeline", errors.Join(err, destroyErr))
		}
		return nil, helper.NewError("creating NER pipeline", err)
	}

	return &LocalExtractor{session: session, pipeline: nerPipeline}, nil
}

// AnalyzeEntities runs NER over the text. The model is English-only;
// language is accepted for interface compatibility and ignored.
func (e *LocalExtractor) AnalyzeEntities(ctx context.Context, text string, language string) (*model.ExtractionResponse, error) {
	if err := ValidateInput(text); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := e.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, helper.NewError("running NER", err)
	}

	response := &model.ExtractionResponse{
		Entities: []model.RawEntity{},
		Language: "en",
		Text:     text,
	}
	if len(result.Entities) == 0 {
		return response, nil
	}

	response.Entities = aggregateRecognized(result.Entities[0])
	return response, nil
}

// Close releases the model session.
func (e *LocalExtractor) Close() error {
	return e.session.Destroy()
}

// aggregateRecognized folds token level recognitions into one raw
// entity per (surface form, type), with one mention per occurrence.
func aggregateRecognized(recognized []pipelines.Entity) []model.RawEntity {
	totalMentions := 0
	order := []string{}
	grouped := map[string]*model.RawEntity{}

	for _, hit := range recognized {
		name := strings.TrimSpace(hit.Word)
		if name == "" {
			continue
		}
		entityType := mapNERLabel(hit.Entity)

		key := strings.ToLower(name) + "|" + entityType
		raw, ok := grouped[key]
		if !ok {
			raw = &model.RawEntity{
				Name:     name,
				Type:     entityType,
				Metadata: map[string]string{},
			}
			grouped[key] = raw
			order = append(order, key)
		}

		raw.Mentions = append(raw.Mentions, model.RawMention{
			Text: model.RawTextSpan{
				Content:     name,
				BeginOffset: int(hit.Start),
			},
			Type: "PROPER",
		})
		totalMentions++
	}

	entities := make([]model.RawEntity, 0, len(order))
	for _, key := range order {
		raw := grouped[key]
		if totalMentions > 0 {
			raw.Salience = float64(len(raw.Mentions)) / float64(totalMentions)
		}
		entities = append(entities, *raw)
	}
	return entities
}

// mapNERLabel strips BIO prefixes and maps the model label to an API
// entity type.
func mapNERLabel(label string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(label, "B-"), "I-")
	if mapped, ok := nerTypeMapping[trimmed]; ok {
		return mapped
	}
	return "OTHER"
}
