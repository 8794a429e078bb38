// Package evaluate applies a prioritized, typed rule set to a sequence of
// clauses and produces per-clause verdicts plus a document-level
// cross-clause consistency check.
//
// Dispatch policy: every rule whose type has a registered handler yields
// exactly one result per clause; rules with unregistered types yield no
// record at all. Handler failures degrade to an N/A result with the
// failure described as evidence and never abort the document.
package evaluate

import (
	"context"

	"github.com/mhollstein/clausescreen/internal/grammar"
	"github.com/mhollstein/clausescreen/internal/model"
)

// handlerFunc evaluates one clause against one rule
type handlerFunc func(ctx context.Context, clauseText string, rule model.Rule) (model.Verdict, string)

// ScoreRecorder receives raw fuzzy scores for threshold calibration
type ScoreRecorder func(ruleID int, score int)

// Evaluator dispatches clauses to rule-type handlers. It holds no
// per-document state; one Evaluator may serve many documents, including
// concurrently, as long as the injected grammar checker tolerates that.
type Evaluator struct {
	handlers map[model.RuleType]handlerFunc
	checker  grammar.Checker
	recorder ScoreRecorder
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithGrammarChecker injects the external grammar-checking collaborator
// used by grammar_count rules. Without it those rules evaluate to N/A.
func WithGrammarChecker(checker grammar.Checker) Option {
	return func(e *Evaluator) {
		e.checker = checker
	}
}

// WithScoreRecorder captures raw fuzzy scores as they are computed,
// feeding the threshold-calibration workflow
func WithScoreRecorder(recorder ScoreRecorder) Option {
	return func(e *Evaluator) {
		e.recorder = recorder
	}
}

// NewEvaluator creates an evaluator with the full handler registry
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{}
	e.handlers = map[model.RuleType]handlerFunc{
		model.RuleFuzzy:             e.checkFuzzy,
		model.RuleNumericYears:      e.checkNumeric,
		model.RuleNumericDays:       e.checkNumeric,
		model.RuleNumericAmount:     e.checkNumeric,
		model.RuleNumericPercentage: e.checkNumeric,
		model.RulePresenceInverse:   e.checkPresenceInverse,
		model.RuleFormat:            e.checkNotApplicable,
		model.RuleOCRConfidence:     e.checkNotApplicable,
		model.RuleGrammarCount:      e.checkGrammarCount,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate applies every handled rule to every clause in order, then runs
// the cross-clause consistency check once over the whole document. The
// result is created fresh per call; rules and clauses are never mutated.
func (e *Evaluator) Evaluate(ctx context.Context, clauses []model.Clause, ruleSet []model.Rule) model.DocumentEvaluation {
	clauseLevel := make([]model.ClauseEvaluation, 0, len(clauses))
	facts := make([]Facts, 0, len(clauses))

	for _, clause := range clauses {
		clauseLevel = append(clauseLevel, model.ClauseEvaluation{
			ClauseNumber: clause.Number,
			ClauseText:   clause.Text,
			Evaluations:  e.evaluateClause(ctx, clause.Text, ruleSet),
		})

		// Fact extraction is independent of rule evaluation; absence of
		// facts simply contributes nothing to the consistency check.
		facts = append(facts, ExtractFacts(clause.Text))
	}

	return model.DocumentEvaluation{
		ClauseLevel:   clauseLevel,
		DocumentLevel: []model.DocumentCheck{CheckConsistency(facts)},
	}
}

func (e *Evaluator) evaluateClause(ctx context.Context, clauseText string, ruleSet []model.Rule) []model.EvaluationResult {
	results := make([]model.EvaluationResult, 0, len(ruleSet))

	for _, rule := range ruleSet {
		handler, ok := e.handlers[rule.Type]
		if !ok {
			continue // dispatch policy: no handler, no record
		}

		verdict, evidence := handler(ctx, clauseText, rule)
		results = append(results, model.EvaluationResult{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			Verdict:  verdict,
			Evidence: evidence,
		})
	}

	return results
}
