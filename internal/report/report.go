// Package report wraps a document evaluation in the artifact envelope the
// host serializes: document name, timestamp, the evaluation itself and a
// verdict tally.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mhollstein/clausescreen/internal/model"
)

// Report is the complete evaluation artifact for one document
type Report struct {
	Document      string                   `json:"document"`
	EvaluatedAt   time.Time                `json:"evaluated_at"`
	ClauseLevel   []model.ClauseEvaluation `json:"clause_level_evaluation"`
	DocumentLevel []model.DocumentCheck    `json:"document_level_evaluation"`
	Summary       Summary                  `json:"summary"`
}

// Summary tallies verdicts across clause-level and document-level results
type Summary struct {
	Clauses       int           `json:"clauses"`
	Green         int           `json:"green"`
	Yellow        int           `json:"yellow"`
	Red           int           `json:"red"`
	NotApplicable int           `json:"not_applicable"`
	WorstVerdict  model.Verdict `json:"worst_verdict"`
}

// New builds the report envelope for one document evaluation
func New(document string, evaluation model.DocumentEvaluation) *Report {
	return &Report{
		Document:      document,
		EvaluatedAt:   time.Now().UTC(),
		ClauseLevel:   evaluation.ClauseLevel,
		DocumentLevel: evaluation.DocumentLevel,
		Summary:       Summarize(evaluation),
	}
}

// Summarize counts verdicts and rolls up the worst one
func Summarize(evaluation model.DocumentEvaluation) Summary {
	s := Summary{
		Clauses:      len(evaluation.ClauseLevel),
		WorstVerdict: evaluation.WorstVerdict(),
	}

	tally := func(v model.Verdict) {
		switch v {
		case model.VerdictGreen:
			s.Green++
		case model.VerdictYellow:
			s.Yellow++
		case model.VerdictRed:
			s.Red++
		case model.VerdictNA:
			s.NotApplicable++
		}
	}

	for _, ce := range evaluation.ClauseLevel {
		for _, ev := range ce.Evaluations {
			tally(ev.Verdict)
		}
	}
	for _, dc := range evaluation.DocumentLevel {
		tally(dc.Verdict)
	}

	return s
}

// WriteJSON writes the report to path, creating parent directories
func (r *Report) WriteJSON(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
