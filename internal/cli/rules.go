package cli

import (
	"fmt"

	"github.com/mhollstein/clausescreen/internal/rules"
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules <file>",
	Short: "Validate and summarize a rule set",
	Long: `Rules loads a rule set file, validates it, and prints one line per
rule. A malformed rule set fails with the first validation error.

Example:
  clausescreen rules rules.json
  clausescreen rules rules.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	ruleSet, err := rules.Load(args[0])
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	fmt.Printf("✓ %s: %d rules\n\n", args[0], len(ruleSet))
	for _, rule := range ruleSet {
		patterns := 0
		for _, tier := range rule.Patterns {
			patterns += len(tier)
		}
		fmt.Printf("  %3d  %-18s %s (%d patterns, %d thresholds)\n",
			rule.ID, rule.Type, rule.Name, patterns, len(rule.Thresholds))
	}

	return nil
}
