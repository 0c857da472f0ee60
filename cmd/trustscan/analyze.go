package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/RohanBisht33/trustscan-app/internal/analyze"
	"github.com/RohanBisht33/trustscan-app/internal/config"
	"github.com/RohanBisht33/trustscan-app/internal/fetch"
	"github.com/RohanBisht33/trustscan-app/internal/ingestion"
	"github.com/RohanBisht33/trustscan-app/internal/observability"
	"github.com/RohanBisht33/trustscan-app/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze text files or a URL for trust and quality signals",
	Long: `Classify content as a job listing or a resume and score it. Job
listings get a trust score with red and green flags; resumes get an ATS
readiness score.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeURL        string
	analyzeProfile    string
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeJSON       bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "URL to fetch and analyze (mutually exclusive with file arguments)")
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "Path to a scoring profile JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed analysis breakdowns")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit results as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := mergedConfig(cmd, analyzeConfigPath, analyzeURL, analyzeProfile, analyzeUseBrowser, analyzeVerbose)
	if err != nil {
		return err
	}
	if cfg.Input != "" && len(args) == 0 {
		args = []string{cfg.Input}
	}

	if cfg.URL == "" && len(args) == 0 {
		return fmt.Errorf("provide at least one file argument or --url")
	}
	if cfg.URL != "" && len(args) > 0 {
		return fmt.Errorf("file arguments and --url are mutually exclusive; provide only one")
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}
	analyzer := analyze.New(profile).WithCache(analyze.NewMemoCache(analyze.DefaultCacheLimit))

	if cfg.URL != "" {
		return analyzeURLSource(analyzer, cfg)
	}
	return analyzeFiles(analyzer, args, cfg)
}

func analyzeURLSource(analyzer *analyze.Analyzer, cfg config.Config) error {
	opts := fetch.DefaultOptions()
	opts.UseBrowser = cfg.UseBrowser
	opts.Verbose = cfg.Verbose

	result, err := fetch.URL(context.Background(), cfg.URL, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch URL: %w", err)
	}

	text := ingestion.CleanText(result.Text)
	analysis := analyzer.AnalyzeSource(text, fetch.OriginHint(cfg.URL))
	return printResult(cfg.URL, analysis, cfg.Verbose)
}

func analyzeFiles(analyzer *analyze.Analyzer, paths []string, cfg config.Config) error {
	results := make([]*types.AnalysisResult, len(paths))

	var g errgroup.Group
	g.SetLimit(4)

	for i, path := range paths {
		g.Go(func() error {
			text, _, err := ingestion.FromFile(path)
			if err != nil {
				return err
			}
			results[i] = analyzer.Analyze(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if err := printResult(path, results[i], cfg.Verbose); err != nil {
			return err
		}
	}
	return nil
}

func printResult(source string, result *types.AnalysisResult, verbose bool) error {
	if analyzeJSON {
		out := struct {
			Source string                `json:"source"`
			Result *types.AnalysisResult `json:"result"`
		}{Source: source, Result: result}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	fmt.Fprintf(os.Stdout, "== %s ==\n", source)
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(result)
	if verbose && result.Resume != nil {
		printer.PrintResumeInsights(result.Resume)
	}
	return nil
}

// mergedConfig loads the optional config file and applies CLI overrides on
// top of it. Only flags the user explicitly set override file values.
func mergedConfig(cmd *cobra.Command, configPath, urlStr, profilePath string, useBrowser, verbose bool) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("url") {
		cfg.URL = urlStr
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = profilePath
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = useBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	return cfg, nil
}
