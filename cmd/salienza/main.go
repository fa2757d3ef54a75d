// Package main provides the salienza CLI entry point.
// salienza analyzes the entity salience of a text and suggests how to
// improve the visibility of its key entities.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salienza/salienza"
	"github.com/salienza/salienza/config"
	"github.com/salienza/salienza/export"
	"github.com/salienza/salienza/extract"
	"github.com/salienza/salienza/helper"
	"github.com/salienza/salienza/model"
)

// Global flags and state.
var (
	language     string
	outputFormat string
	outputFile   string
	noDedupe     bool
	noStopwords  bool
	local        bool
	store        bool
	debug        bool

	// cfg holds the loaded configuration.
	cfg *config.CLIConfig
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "salienza",
	Short: "Entity salience analysis for text",
	Long: `salienza extracts the entities of a text, measures how salient each
one is and explains which factors drive that salience.

Entities are extracted through the Google Cloud Natural Language API or
a local NER model, then filtered, deduplicated and classified into
salience tiers with actionable optimization suggestions.

Examples:
  salienza analyze article.txt
  cat article.txt | salienza analyze --language it
  salienza analyze article.txt --format json --out result.json
  salienza analyze article.txt --format html --out highlighted.html
  salienza languages
  salienza history --limit 10`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		// Override with command-line flags.
		if language != "" {
			cfg.Language = language
		}
		if outputFormat != "" {
			cfg.OutputFormat = config.OutputFormat(outputFormat)
		}
		if noDedupe {
			cfg.Deduplicate = false
		}
		if noStopwords {
			cfg.FilterStopwords = false
		}
		if local {
			cfg.Local = true
		}
		if debug {
			cfg.Debug = true
		}

		return nil
	},
}

// analyzeCmd runs the full analysis over a file or stdin.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze the entity salience of a text",
	Long: `Analyze the entity salience of a text read from a file or stdin.

The text is sent to the configured extractor, the resulting entities
are filtered and deduplicated, and every surviving entity is classified
into a salience tier with factor analysis and suggestions.

Examples:
  salienza analyze article.txt
  cat article.txt | salienza analyze
  salienza analyze article.txt --language it --format json
  salienza analyze article.txt --no-dedupe --no-stopwords
  salienza analyze article.txt --local
  salienza analyze article.txt --store`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		extractor, cleanup, err := buildExtractor()
		if err != nil {
			return err
		}
		defer cleanup()

		opts := model.ProcessOptions{
			Deduplicate:     cfg.Deduplicate,
			FilterStopwords: cfg.FilterStopwords,
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		if store || cfg.DatabaseEnabled {
			return analyzeAndStore(ctx, extractor, text, opts)
		}

		analyzer, err := salienza.NewAnalyzer(extractor)
		if err != nil {
			return err
		}

		result, err := analyzer.AnalyzeText(ctx, text, cfg.Language, opts)
		if err != nil {
			return userFacing(err)
		}

		return writeResult(result, text)
	},
}

// languagesCmd lists the supported input languages.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported input languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Supported languages:")
		for _, lang := range extract.SupportedLanguages() {
			fmt.Printf("  %-6s %s\n", lang.Code, lang.Name)
		}
		return nil
	},
}

// History command flags.
var (
	historyLimit    int
	historyLanguage string
)

// historyCmd lists stored analyses.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored analyses",
	Long: `List analyses stored in the configured Postgres database, newest
first. Requires database_enabled in the configuration.

Examples:
  salienza history
  salienza history --limit 5
  salienza history --language it`,
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer, err := storeBackedAnalyzer()
		if err != nil {
			return err
		}
		defer analyzer.Close()

		var analyses []*model.Analysis
		if historyLanguage != "" {
			analyses, err = analyzer.AnalysesByLanguage(historyLanguage, historyLimit)
		} else {
			analyses, err = analyzer.RecentAnalyses(nil, historyLimit)
		}
		if err != nil {
			return err
		}

		if len(analyses) == 0 {
			fmt.Println("No stored analyses found.")
			return nil
		}

		fmt.Printf("%-38s %-10s %-9s %-21s %s\n", "ID", "LANGUAGE", "ENTITIES", "CREATED", "TEXT")
		for _, a := range analyses {
			preview := a.SourceText
			if len(preview) > 40 {
				preview = preview[:40] + "..."
			}
			preview = strings.ReplaceAll(preview, "\n", " ")
			fmt.Printf("%-38s %-10s %-9d %-21s %s\n",
				a.RID.String(), a.Language, a.EntityCount,
				a.CreatedAt.Format("2006-01-02 15:04:05"), preview)
		}
		return nil
	},
}

// configCmd manages CLI configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long:  `View and modify the salienza CLI configuration settings.`,
}

// configShowCmd displays current configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			var err error
			cfg, err = config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
		}

		configPath, _ := config.ConfigPath()

		apiKey := "(not set)"
		if cfg.APIKey != "" {
			apiKey = "(set)"
		}

		fmt.Println("Current configuration:")
		fmt.Printf("  Config file:       %s\n", configPath)
		fmt.Printf("  API key:           %s\n", apiKey)
		fmt.Printf("  Language:          %s\n", cfg.Language)
		fmt.Printf("  Timeout:           %s\n", cfg.Timeout)
		fmt.Printf("  Output format:     %s\n", cfg.OutputFormat)
		fmt.Printf("  Local extractor:   %t\n", cfg.Local)
		fmt.Printf("  Deduplicate:       %t\n", cfg.Deduplicate)
		fmt.Printf("  Filter stopwords:  %t\n", cfg.FilterStopwords)
		fmt.Printf("  Database enabled:  %t\n", cfg.DatabaseEnabled)
		fmt.Printf("  Debug:             %t\n", cfg.Debug)
		return nil
	},
}

// configInitCmd initializes configuration.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with default values if one doesn't exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("getting config path: %w", err)
		}

		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Configuration file already exists: %s\n", configPath)
			fmt.Println("Use 'salienza config show' to view current settings.")
			return nil
		}

		defaultCfg := config.DefaultConfig()
		if err := config.SaveConfig(defaultCfg); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}

		fmt.Printf("Created configuration file: %s\n", configPath)
		return nil
	},
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Available keys:
  api_key          - Google Cloud Natural Language API key
  endpoint         - API endpoint override
  language         - Default input language (ISO 639-1 code or auto)
  timeout          - Request timeout (e.g., 30s, 1m)
  output_format    - Default output format (text, json, csv, html)
  local            - Use the local NER model (true/false)
  deduplicate      - Merge near-duplicate entities (true/false)
  filter_stopwords - Remove stopword entities (true/false)
  database_enabled - Store analyses in Postgres (true/false)

Examples:
  salienza config set api_key AIza...
  salienza config set language it
  salienza config set output_format json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		currentCfg, err := config.LoadConfig()
		if err != nil {
			currentCfg = config.DefaultConfig()
		}

		switch key {
		case "api_key":
			currentCfg.APIKey = value
		case "endpoint":
			currentCfg.Endpoint = value
		case "language":
			currentCfg.Language = value
		case "timeout":
			duration, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid timeout value: %w", err)
			}
			currentCfg.Timeout = duration
		case "output_format":
			format := config.OutputFormat(value)
			if !format.IsValid() {
				return fmt.Errorf("invalid output format: %s (must be text, json, csv, or html)", value)
			}
			currentCfg.OutputFormat = format
		case "local", "deduplicate", "filter_stopwords", "database_enabled":
			enabled, err := parseBool(value)
			if err != nil {
				return fmt.Errorf("invalid %s value: %w", key, err)
			}
			switch key {
			case "local":
				currentCfg.Local = enabled
			case "deduplicate":
				currentCfg.Deduplicate = enabled
			case "filter_stopwords":
				currentCfg.FilterStopwords = enabled
			case "database_enabled":
				currentCfg.DatabaseEnabled = enabled
			}
		default:
			return fmt.Errorf("unknown configuration key: %s", key)
		}

		if err := config.SaveConfig(currentCfg); err != nil {
			return fmt.Errorf("saving configuration: %w", err)
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("salienza version 1.0.0")
	},
}

// readInput reads the text to analyze from the file argument or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("no input: pass a file argument or pipe text to stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// buildExtractor creates the configured extractor. The cleanup function
// releases local model resources and is a no-op for the API client.
func buildExtractor() (extract.Extractor, func(), error) {
	if cfg.Local {
		localExtractor, err := extract.NewLocalExtractor()
		if err != nil {
			return nil, nil, fmt.Errorf("creating local extractor: %w", err)
		}
		return localExtractor, func() { _ = localExtractor.Close() }, nil
	}

	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("no API key configured: run 'salienza config set api_key <key>' or set SALIENZA_API_KEY, or use --local")
	}

	client := extract.NewGoogleClient(cfg.APIKey)
	if cfg.Endpoint != "" {
		client.BaseURL = cfg.Endpoint
	}
	return client, func() {}, nil
}

// storeBackedAnalyzer creates an Analyzer connected to the configured
// Postgres database. Extraction is not needed for history commands, so
// any configured extractor works.
func storeBackedAnalyzer() (*salienza.Analyzer, error) {
	if !cfg.DatabaseEnabled && !store {
		return nil, fmt.Errorf("database not enabled: run 'salienza config set database_enabled true'")
	}

	dbConfig, err := helper.NewDatabaseConfiguration()
	if err != nil {
		return nil, fmt.Errorf("loading database configuration: %w", err)
	}

	extractor, _, err := buildExtractor()
	if err != nil {
		// History listing works without a usable extractor.
		extractor = extract.NewGoogleClient("unused")
	}

	return salienza.NewAnalyzerWithStore(extractor, dbConfig)
}

// analyzeAndStore runs the analysis through a store-backed analyzer and
// prints the result plus the stored analysis ID.
func analyzeAndStore(ctx context.Context, extractor extract.Extractor, text string, opts model.ProcessOptions) error {
	dbConfig, err := helper.NewDatabaseConfiguration()
	if err != nil {
		return fmt.Errorf("loading database configuration: %w", err)
	}

	analyzer, err := salienza.NewAnalyzerWithStore(extractor, dbConfig)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	analysis, err := analyzer.AnalyzeAndStore(ctx, text, cfg.Language, opts)
	if err != nil {
		return userFacing(err)
	}

	if err := writeResult(&analysis.Result.AnalysisResult, text); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\nStored analysis %s\n", analysis.RID.String())
	return nil
}

// writeResult renders the analysis result in the configured format and
// writes it to the output file or stdout.
func writeResult(result *model.AnalysisResult, sourceText string) error {
	var rendered string
	var err error

	switch cfg.OutputFormat {
	case config.OutputFormatJSON:
		rendered, err = export.ToJSON(result)
	case config.OutputFormatCSV:
		rendered, err = export.ToCSV(result)
	case config.OutputFormatHTML:
		rendered = export.HighlightEntities(sourceText, result.Entities)
	default:
		return printResultText(result)
	}
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(rendered), 0644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Printf("Wrote %s output to %s\n", cfg.OutputFormat, outputFile)
		return nil
	}

	fmt.Println(rendered)
	return nil
}

// printResultText renders the human-readable report.
func printResultText(result *model.AnalysisResult) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Printf("Entity salience analysis (%s)\n", result.Language)
	fmt.Printf("Entities: %d", result.TotalEntities)
	if result.OriginalCount != result.TotalEntities {
		faint.Printf(" (from %d raw, %d after filtering)", result.OriginalCount, result.FilteredCount)
	}
	fmt.Println()
	fmt.Println()

	if len(result.Entities) == 0 {
		fmt.Println("No entities found.")
		return nil
	}

	for i, entity := range result.Entities {
		class := entity.SalienceClassification
		bold.Printf("%d. %s %s", i+1, class.Icon, entity.Name)
		faint.Printf("  [%s]\n", entity.TypeName)
		fmt.Printf("   Salience: %.4f  Tier: %s (%d/100)\n", entity.Salience, class.Label, class.Score)
		fmt.Printf("   %s\n", class.Description)
		if entity.IsDeduplicated {
			faint.Printf("   Merged from: %s\n", strings.Join(entity.OriginalNames, ", "))
		}
		if entity.WikipediaURL != "" {
			faint.Printf("   Wikipedia: %s\n", entity.WikipediaURL)
		}

		for _, suggestion := range entity.OptimizationSuggestions {
			fmt.Printf("   %s %s: %s\n", suggestion.Icon, suggestion.Title, suggestion.Description)
			if suggestion.Actionable != "" {
				faint.Printf("      %s\n", suggestion.Actionable)
			}
		}
		fmt.Println()
	}

	stats := result.Stats()
	bold.Println("Summary")
	fmt.Printf("  Average salience: %.4f\n", stats.AverageSalience)
	fmt.Printf("  High salience entities: %d\n", stats.HighSalienceEntities)
	if len(stats.TopEntityTypes) > 0 {
		parts := make([]string, 0, len(stats.TopEntityTypes))
		for _, tc := range stats.TopEntityTypes {
			parts = append(parts, fmt.Sprintf("%s: %d", tc.Name, tc.Count))
		}
		fmt.Printf("  Types: %s\n", strings.Join(parts, ", "))
	}

	return nil
}

// userFacing unwraps extractor errors into their user message.
func userFacing(err error) error {
	var apiErr *extract.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s", apiErr.UserMessage())
	}
	return err
}

func parseBool(value string) (bool, error) {
	switch value {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q must be true or false", value)
}

func init() {
	// Global flags.
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "input language (ISO 639-1 code or auto)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "output format: text, json, csv, html")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Analyze command flags.
	analyzeCmd.Flags().StringVar(&outputFile, "out", "", "write output to file instead of stdout")
	analyzeCmd.Flags().BoolVar(&noDedupe, "no-dedupe", false, "disable entity deduplication")
	analyzeCmd.Flags().BoolVar(&noStopwords, "no-stopwords", false, "disable stopword filtering")
	analyzeCmd.Flags().BoolVar(&local, "local", false, "use the local NER model instead of the API")
	analyzeCmd.Flags().BoolVar(&store, "store", false, "store the analysis in the configured database")

	// History command flags.
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of analyses to list")
	historyCmd.Flags().StringVar(&historyLanguage, "language", "", "only list analyses for this language")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Config subcommands.
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
