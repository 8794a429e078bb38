package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mhollstein/clausescreen/internal/pipeline"
	"github.com/mhollstein/clausescreen/internal/rules"
	"github.com/mhollstein/clausescreen/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Evaluate every document in a directory in parallel",
	Long: `Batch screens a directory of guarantee documents concurrently:
- Pick up every .txt, .text, .html, and .htm file in the directory
- Evaluate documents in parallel with a configurable worker count
- Write one JSON report per document into the output directory

Example:
  clausescreen batch ./guarantees
  clausescreen batch ./guarantees --concurrency 8 --output-dir ./reports
  clausescreen batch ./guarantees --rules rules.yaml --grammar languagetool`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./clausescreen-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Shared evaluation flags
	batchCmd.Flags().StringVar(&rulesPath, "rules", "rules.json", "rule set file (JSON or YAML)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable grammar result cache")
	batchCmd.Flags().StringVar(&grammarProvider, "grammar", "", "grammar provider (languagetool, openai; empty disables grammar rules)")
	batchCmd.Flags().StringVar(&grammarURL, "grammar-url", "", "grammar service base URL (LanguageTool only)")
	batchCmd.Flags().StringVar(&grammarModel, "grammar-model", "gpt-4o-mini", "model name for the openai provider")
	batchCmd.Flags().StringVar(&grammarLanguage, "language", "en-US", "document language passed to the grammar service")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Clausescreen Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input dir:    %s\n", dir)
	fmt.Fprintf(os.Stderr, "  Rule set:     %s\n", rulesPath)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	ruleSet, err := rules.Load(rulesPath)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency
	cfg.Output.OutputDir = outputDir

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.New(cfg, ruleSet)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, concurrency)

	fmt.Fprintf(os.Stderr, "⚙️  Processing documents with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	results, err := processor.ProcessDir(ctx, dir)
	if err != nil {
		return fmt.Errorf("process directory: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++

		jsonPath := filepath.Join(outputDir, reportFilename(result.Report.Document))
		if err := result.Report.WriteJSON(jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write report: %v\n", result.Path, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%d clauses, worst verdict %s)\n",
			result.Report.Document, result.Report.Summary.Clauses, result.Report.Summary.WorstVerdict)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// reportFilename derives the report name from a document name,
// e.g. guarantee.txt -> guarantee_evaluation.json
func reportFilename(document string) string {
	base := strings.TrimSuffix(document, filepath.Ext(document))
	if base == "" {
		base = document
	}
	return base + "_evaluation.json"
}
