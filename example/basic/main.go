package main

import (
	"context"
	"fmt"
	"log"

	"github.com/salienza/salienza"
	"github.com/salienza/salienza/export"
	"github.com/salienza/salienza/extract"
	"github.com/salienza/salienza/model"
)

const sampleText = `Johann Sebastian Bach was a German composer of the Baroque period.
Bach spent most of his career in Leipzig, where he served as Thomaskantor.
His works, including the Brandenburg Concertos, influenced generations of composers.
Today Leipzig celebrates Bach with an annual festival.`

// cannedExtractor returns a fixed extraction response so the example
// runs without an API key or a local model download.
type cannedExtractor struct{}

func (cannedExtractor) AnalyzeEntities(ctx context.Context, text string, language string) (*model.ExtractionResponse, error) {
	return &model.ExtractionResponse{
		Language: "en",
		Text:     text,
		Entities: []model.RawEntity{
			{
				Name:     "Johann Sebastian Bach",
				Type:     "PERSON",
				Salience: 0.45,
				Mentions: []model.RawMention{
					{Text: model.RawTextSpan{Content: "Johann Sebastian Bach", BeginOffset: 0}, Type: "PROPER"},
				},
				Metadata: map[string]string{"wikipedia_url": "https://en.wikipedia.org/wiki/Johann_Sebastian_Bach"},
			},
			{
				Name:     "Bach",
				Type:     "PERSON",
				Salience: 0.2,
				Mentions: []model.RawMention{
					{Text: model.RawTextSpan{Content: "Bach", BeginOffset: 64}, Type: "PROPER"},
					{Text: model.RawTextSpan{Content: "Bach", BeginOffset: 268}, Type: "PROPER"},
				},
			},
			{
				Name:     "Leipzig",
				Type:     "LOCATION",
				Salience: 0.15,
				Mentions: []model.RawMention{
					{Text: model.RawTextSpan{Content: "Leipzig", BeginOffset: 96}, Type: "PROPER"},
					{Text: model.RawTextSpan{Content: "Leipzig", BeginOffset: 246}, Type: "PROPER"},
				},
			},
			{
				Name:     "the",
				Type:     "OTHER",
				Salience: 0.05,
				Mentions: []model.RawMention{
					{Text: model.RawTextSpan{Content: "the", BeginOffset: 40}, Type: "COMMON"},
				},
			},
		},
	}, nil
}

func main() {
	analyzer, err := salienza.NewAnalyzer(cannedExtractor{})
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}

	fmt.Println("Analyzing sample text...")
	result, err := analyzer.AnalyzeText(context.Background(), sampleText, "auto", model.DefaultProcessOptions())
	if err != nil {
		log.Fatalf("Failed to analyze text: %v", err)
	}

	fmt.Printf("\nFound %d entities (from %d raw):\n", result.TotalEntities, result.OriginalCount)
	for i, entity := range result.Entities {
		class := entity.SalienceClassification
		fmt.Printf("\n--- Entity %d ---\n", i+1)
		fmt.Printf("Name: %s (%s)\n", entity.Name, entity.TypeName)
		fmt.Printf("Salience: %.4f\n", entity.Salience)
		fmt.Printf("Tier: %s %s (%d/100)\n", class.Icon, class.Label, class.Score)
		if entity.IsDeduplicated {
			fmt.Printf("Merged from: %v\n", entity.OriginalNames)
		}
		for _, suggestion := range entity.OptimizationSuggestions {
			fmt.Printf("Suggestion: %s %s\n", suggestion.Icon, suggestion.Title)
		}
	}

	// Export the result as CSV
	csv, err := export.ToCSV(result)
	if err != nil {
		log.Fatalf("Failed to export CSV: %v", err)
	}
	fmt.Printf("\nCSV export:\n%s\n", csv)

	// A real extractor replaces the canned one in production:
	//   client := extract.NewGoogleClient(os.Getenv("SALIENZA_API_KEY"))
	//   analyzer, _ = salienza.NewAnalyzer(client)
	fmt.Println("\nSupported languages:")
	for _, lang := range extract.SupportedLanguages() {
		fmt.Printf("  %s (%s)\n", lang.Name, lang.Code)
	}

	fmt.Println("\nBasic example completed successfully!")
}
