package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mhollstein/clausescreen/internal/evaluate"
	"github.com/mhollstein/clausescreen/internal/model"
	"github.com/mhollstein/clausescreen/internal/pipeline"
	"github.com/mhollstein/clausescreen/internal/rules"
	"github.com/spf13/cobra"
)

var (
	rulesPath       string
	outJSON         string
	timeout         time.Duration
	noCache         bool
	grammarProvider string
	grammarURL      string
	grammarModel    string
	grammarLanguage string
	trainingOutput  string
	trainingLabel   string
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <file>",
	Short: "Evaluate a single document against a rule set",
	Long: `Evaluate splits one guarantee document into clauses and screens
every clause against the configured rule set:
- Split text into clauses at legal markers and paragraph breaks
- Run every applicable rule against every clause
- Check amounts, currencies, and contract numbers for cross-clause consistency
- Write a JSON report with per-clause verdicts and a document summary

Example:
  clausescreen evaluate guarantee.txt
  clausescreen evaluate guarantee.txt --rules rules.yaml --json report.json
  clausescreen evaluate guarantee.txt --grammar languagetool --language de-DE
  clausescreen evaluate good/sample1.txt --training-output scores.json --training-label good`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	// Rule set and output flags
	evaluateCmd.Flags().StringVar(&rulesPath, "rules", "rules.json", "rule set file (JSON or YAML)")
	evaluateCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	evaluateCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall evaluation timeout")
	evaluateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable grammar result cache")

	// Grammar flags
	evaluateCmd.Flags().StringVar(&grammarProvider, "grammar", "", "grammar provider (languagetool, openai; empty disables grammar rules)")
	evaluateCmd.Flags().StringVar(&grammarURL, "grammar-url", "", "grammar service base URL (LanguageTool only)")
	evaluateCmd.Flags().StringVar(&grammarModel, "grammar-model", "gpt-4o-mini", "model name for the openai provider")
	evaluateCmd.Flags().StringVar(&grammarLanguage, "language", "en-US", "document language passed to the grammar service")

	// Training flags
	evaluateCmd.Flags().StringVar(&trainingOutput, "training-output", "", "append raw fuzzy scores to this JSON file")
	evaluateCmd.Flags().StringVar(&trainingLabel, "training-label", "good", "label recorded with each training score (good, bad)")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Evaluating: %s\n", file)
		fmt.Fprintf(os.Stderr, "Rule set: %s\n", rulesPath)
		fmt.Fprintln(os.Stderr)
	}

	ruleSet, err := rules.Load(rulesPath)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	var evalOpts []evaluate.Option
	var collector *evaluate.TrainingCollector
	if trainingOutput != "" {
		collector = evaluate.NewTrainingCollector(trainingLabel)
		evalOpts = append(evalOpts, evaluate.WithScoreRecorder(collector.Record))
	}

	p, err := pipeline.New(cfg, ruleSet, evalOpts...)
	if err != nil {
		return err
	}

	rep, err := p.EvaluateFile(ctx, file)
	if err != nil {
		return fmt.Errorf("evaluate failed: %w", err)
	}

	if err := rep.WriteJSON(outJSON); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if collector != nil {
		if err := collector.AppendJSON(trainingOutput); err != nil {
			return fmt.Errorf("write training scores: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Recorded %d training scores\n", len(collector.Samples()))
		}
	}

	fmt.Fprintf(os.Stderr, "✓ %s: %d clauses, worst verdict %s\n",
		rep.Document, rep.Summary.Clauses, rep.Summary.WorstVerdict)
	fmt.Fprintf(os.Stderr, "✓ Report written to %s\n", outJSON)

	return nil
}

// buildConfig combines defaults with the evaluate/batch flag values
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = !noCache
	cfg.Grammar.Provider = grammarProvider
	cfg.Grammar.Language = grammarLanguage
	cfg.Grammar.Model = grammarModel
	if grammarURL != "" {
		cfg.Grammar.BaseURL = grammarURL
	}

	if grammarProvider == "openai" {
		cfg.Grammar.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Grammar.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}
