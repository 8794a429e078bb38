// Package rules loads and validates declarative rule sets. A rule set is
// an ordered sequence of rules read once per run from a JSON or YAML file
// and treated as read-only configuration afterwards. A malformed rule set
// is a configuration error and aborts the run before any clause is
// processed.
package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mhollstein/clausescreen/internal/model"
	"gopkg.in/yaml.v3"
)

// Load reads an ordered rule set from path. The format is chosen by file
// extension: .yaml/.yml parse as YAML, everything else as JSON. The loaded
// set is validated before it is returned.
func Load(path string) ([]model.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}

	var ruleSet []model.Rule
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ruleSet); err != nil {
			return nil, fmt.Errorf("parse rule set %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &ruleSet); err != nil {
			return nil, fmt.Errorf("parse rule set %s: %w", path, err)
		}
	}

	if err := Validate(ruleSet); err != nil {
		return nil, fmt.Errorf("invalid rule set %s: %w", path, err)
	}

	return ruleSet, nil
}

// Validate checks structural soundness of a rule set: unique ids, display
// names, known types, sane thresholds and pattern tiers.
func Validate(ruleSet []model.Rule) error {
	if len(ruleSet) == 0 {
		return fmt.Errorf("rule set is empty")
	}

	seen := make(map[int]bool, len(ruleSet))
	for i, rule := range ruleSet {
		if seen[rule.ID] {
			return fmt.Errorf("duplicate rule id %d", rule.ID)
		}
		seen[rule.ID] = true

		if strings.TrimSpace(rule.Name) == "" {
			return fmt.Errorf("rule %d (index %d): name is required", rule.ID, i)
		}

		if !knownType(rule.Type) {
			return fmt.Errorf("rule %d: unknown type %q", rule.ID, rule.Type)
		}

		for tier := range rule.Patterns {
			switch tier {
			case model.TierGreen, model.TierYellow, model.TierRed:
			default:
				return fmt.Errorf("rule %d: unknown pattern tier %q", rule.ID, tier)
			}
		}

		for name, value := range rule.Thresholds {
			if value < 0 {
				return fmt.Errorf("rule %d: threshold %q is negative", rule.ID, name)
			}
		}

		if rule.Type == model.RuleFuzzy {
			green, hasGreen := rule.Thresholds[model.TierGreen]
			yellow, hasYellow := rule.Thresholds[model.TierYellow]
			if hasGreen && hasYellow && green < yellow {
				return fmt.Errorf("rule %d: green threshold %.0f below yellow threshold %.0f", rule.ID, green, yellow)
			}
		}
	}

	return nil
}

func knownType(t model.RuleType) bool {
	for _, known := range model.KnownRuleTypes {
		if t == known {
			return true
		}
	}
	return false
}
