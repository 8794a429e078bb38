package rules

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhollstein/clausescreen/internal/model"
)

func TestLoad_JSON(t *testing.T) {
	ruleSet, err := Load(filepath.Join("testdata", "rules.json"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(ruleSet) != 8 {
		t.Fatalf("expected 8 rules, got %d", len(ruleSet))
	}

	// Order must be preserved: list order is application priority
	if ruleSet[0].ID != 1 || ruleSet[0].Type != model.RuleFuzzy {
		t.Errorf("expected first rule id 1 type fuzzy, got id %d type %s", ruleSet[0].ID, ruleSet[0].Type)
	}

	if got := ruleSet[0].Threshold("green", 0); got != 90 {
		t.Errorf("expected green threshold 90, got %v", got)
	}
	if patterns := ruleSet[0].PatternTier("green"); len(patterns) != 2 {
		t.Errorf("expected 2 green patterns, got %d", len(patterns))
	}
}

func TestLoad_YAML(t *testing.T) {
	ruleSet, err := Load(filepath.Join("testdata", "rules.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(ruleSet) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(ruleSet))
	}
	if ruleSet[0].Name != "Governing law" {
		t.Errorf("expected name 'Governing law', got %q", ruleSet[0].Name)
	}
	if got := ruleSet[1].Threshold("amount_presence", 0); got != 1 {
		t.Errorf("expected amount_presence 1, got %v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nope.json")); err == nil {
		t.Fatal("expected error for missing rule set file")
	}
}

func TestValidate_Empty(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Fatal("expected error for empty rule set")
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	ruleSet := []model.Rule{
		{ID: 1, Name: "a", Type: model.RuleFuzzy},
		{ID: 1, Name: "b", Type: model.RuleFuzzy},
	}
	err := Validate(ruleSet)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestValidate_UnknownType(t *testing.T) {
	ruleSet := []model.Rule{{ID: 1, Name: "a", Type: "telepathy"}}
	err := Validate(ruleSet)
	if err == nil || !strings.Contains(err.Error(), "unknown type") {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestValidate_MissingName(t *testing.T) {
	ruleSet := []model.Rule{{ID: 1, Name: "  ", Type: model.RuleFuzzy}}
	if err := Validate(ruleSet); err == nil {
		t.Fatal("expected error for blank rule name")
	}
}

func TestValidate_UnknownPatternTier(t *testing.T) {
	ruleSet := []model.Rule{{
		ID: 1, Name: "a", Type: model.RuleFuzzy,
		Patterns: map[string][]string{"purple": {"x"}},
	}}
	if err := Validate(ruleSet); err == nil {
		t.Fatal("expected error for unknown pattern tier")
	}
}

func TestValidate_GreenBelowYellow(t *testing.T) {
	ruleSet := []model.Rule{{
		ID: 1, Name: "a", Type: model.RuleFuzzy,
		Thresholds: map[string]float64{"green": 70, "yellow": 80},
	}}
	if err := Validate(ruleSet); err == nil {
		t.Fatal("expected error when green threshold is below yellow")
	}
}

func TestValidate_NegativeThreshold(t *testing.T) {
	ruleSet := []model.Rule{{
		ID: 1, Name: "a", Type: model.RuleNumericDays,
		Thresholds: map[string]float64{"green_min_days": -5},
	}}
	if err := Validate(ruleSet); err == nil {
		t.Fatal("expected error for negative threshold")
	}
}
