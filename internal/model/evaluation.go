package model

// EvaluationResult is the outcome of one rule applied to one clause
type EvaluationResult struct {
	RuleID   int     `json:"rule_id"`
	RuleName string  `json:"rule_name"`
	Verdict  Verdict `json:"verdict"`
	Evidence string  `json:"evidence"` // Matched pattern, offending value, or failure description
}

// ClauseEvaluation groups all rule results for a single clause
type ClauseEvaluation struct {
	ClauseNumber int                `json:"clause_number"`
	ClauseText   string             `json:"clause_text"`
	Evaluations  []EvaluationResult `json:"evaluations"`
}

// DocumentCheck is a document-level check result (one per check, not per clause)
type DocumentCheck struct {
	CheckName string  `json:"check_name"`
	Verdict   Verdict `json:"verdict"`
	Evidence  string  `json:"evidence"`
}

// DocumentEvaluation is the complete evaluation of one document: per-clause
// rule results plus document-level cross-clause checks. Created fresh per
// invocation; the engine keeps no state across documents.
type DocumentEvaluation struct {
	ClauseLevel   []ClauseEvaluation `json:"clause_level_evaluation"`
	DocumentLevel []DocumentCheck    `json:"document_level_evaluation"`
}

// WorstVerdict returns the most severe verdict anywhere in the evaluation,
// clause-level and document-level combined. N/A results never dominate.
func (d DocumentEvaluation) WorstVerdict() Verdict {
	worst := VerdictGreen
	for _, ce := range d.ClauseLevel {
		for _, ev := range ce.Evaluations {
			worst = worst.Worse(ev.Verdict)
		}
	}
	for _, dc := range d.DocumentLevel {
		worst = worst.Worse(dc.Verdict)
	}
	return worst
}
