package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mhollstein/clausescreen/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Grammar.Provider = ""
	return cfg
}

func testRuleSet() []model.Rule {
	return []model.Rule{
		{ID: 1, Name: "Unlimited guarantee", Type: model.RuleFuzzy,
			Patterns:   map[string][]string{"green": {"Diese Bürgschaft ist unbefristet"}},
			Thresholds: map[string]float64{"green": 90, "yellow": 75}},
		{ID: 2, Name: "Term limit", Type: model.RuleNumericYears,
			Thresholds: map[string]float64{"green_max_years": 6}},
	}
}

func TestNew_InvalidRuleSetFails(t *testing.T) {
	if _, err := New(testConfig(), nil); err == nil {
		t.Fatal("expected configuration error for empty rule set")
	}

	bad := []model.Rule{{ID: 1, Name: "x", Type: "telepathy"}}
	if _, err := New(testConfig(), bad); err == nil {
		t.Fatal("expected configuration error for unknown rule type")
	}
}

func TestNew_UnknownGrammarProviderFails(t *testing.T) {
	cfg := testConfig()
	cfg.Grammar.Provider = "clippy"

	if _, err := New(cfg, testRuleSet()); err == nil {
		t.Fatal("expected configuration error for unknown grammar provider")
	}
}

func TestEvaluateText_EndToEnd(t *testing.T) {
	p, err := New(testConfig(), testRuleSet())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	text := "Diese Bürgschaft ist unbefristet und erlischt mit ihrer Rückgabe an den Bürgen nach vollständiger Erfüllung sämtlicher gesicherter Verpflichtungen aus dem Vertrag.\n\n" +
		"Die Verjährung tritt jedoch spätestens 5 Jahre nach dem gesetzlichen Verjährungsbeginn ein und richtet sich im Übrigen nach den gesetzlichen Bestimmungen des bürgerlichen Rechts."

	r := p.EvaluateText(context.Background(), "guarantee.txt", text)

	if r.Document != "guarantee.txt" {
		t.Errorf("expected document name in envelope, got %q", r.Document)
	}
	if len(r.ClauseLevel) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(r.ClauseLevel))
	}
	for _, ce := range r.ClauseLevel {
		if len(ce.Evaluations) != 2 {
			t.Errorf("clause %d: expected 2 evaluations, got %d", ce.ClauseNumber, len(ce.Evaluations))
		}
	}
	if len(r.DocumentLevel) != 1 {
		t.Fatalf("expected 1 document-level check, got %d", len(r.DocumentLevel))
	}
	if r.Summary.Clauses != 2 {
		t.Errorf("expected summary over 2 clauses, got %d", r.Summary.Clauses)
	}
}

func TestEvaluateText_EmptyDocument(t *testing.T) {
	p, err := New(testConfig(), testRuleSet())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	r := p.EvaluateText(context.Background(), "empty.txt", "   \n\n  ")

	if len(r.ClauseLevel) != 0 {
		t.Errorf("expected zero clauses for whitespace-only input, got %d", len(r.ClauseLevel))
	}
	if len(r.DocumentLevel) != 1 || r.DocumentLevel[0].Verdict != model.VerdictGreen {
		t.Errorf("expected the consistency check to still run and report GREEN")
	}
}

func TestEvaluateFile(t *testing.T) {
	p, err := New(testConfig(), testRuleSet())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "doc.txt")
	content := "Diese Bürgschaft ist unbefristet und erlischt mit ihrer Rückgabe an den Bürgen nach vollständiger Erfüllung sämtlicher gesicherter Verpflichtungen aus dem geschlossenen Vertrag."
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	r, err := p.EvaluateFile(context.Background(), path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if r.Document != "doc.txt" {
		t.Errorf("expected base name as document, got %q", r.Document)
	}
	if len(r.ClauseLevel) != 1 {
		t.Errorf("expected 1 clause, got %d", len(r.ClauseLevel))
	}

	if _, err := p.EvaluateFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing document")
	}
}
