// Package pipeline orchestrates the screening of one document:
// ingest -> split -> evaluate -> report envelope. The pipeline holds no
// per-document state; documents are independent and may be processed in
// parallel by the batch layer.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhollstein/clausescreen/internal/cache"
	"github.com/mhollstein/clausescreen/internal/evaluate"
	"github.com/mhollstein/clausescreen/internal/grammar"
	"github.com/mhollstein/clausescreen/internal/ingest"
	"github.com/mhollstein/clausescreen/internal/model"
	"github.com/mhollstein/clausescreen/internal/report"
	"github.com/mhollstein/clausescreen/internal/rules"
	"github.com/mhollstein/clausescreen/internal/split"
)

// Pipeline screens documents against a fixed, validated rule set
type Pipeline struct {
	splitter  *split.Splitter
	evaluator *evaluate.Evaluator
	ruleSet   []model.Rule
	config    *model.Config
}

// New creates a pipeline. The rule set is validated here: a malformed
// rule set aborts the run before any clause is processed.
func New(cfg *model.Config, ruleSet []model.Rule, evalOpts ...evaluate.Option) (*Pipeline, error) {
	if err := rules.Validate(ruleSet); err != nil {
		return nil, fmt.Errorf("rule set: %w", err)
	}

	checker, err := grammar.NewChecker(grammar.ConfigFromModel(cfg.Grammar))
	if err != nil {
		return nil, fmt.Errorf("grammar checker: %w", err)
	}
	if checker != nil {
		var store cache.Cache
		if cfg.Cache.Enabled {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		}
		checker = grammar.NewCachedChecker(checker, store, cfg.Grammar.RequestsPerSecond, cfg.Grammar.Burst)
		evalOpts = append(evalOpts, evaluate.WithGrammarChecker(checker))
	}

	return &Pipeline{
		splitter:  split.NewSplitter(cfg.Splitter.MinWords, cfg.Splitter.MaxWords),
		evaluator: evaluate.NewEvaluator(evalOpts...),
		ruleSet:   ruleSet,
		config:    cfg,
	}, nil
}

// EvaluateText screens one document given as raw text
func (p *Pipeline) EvaluateText(ctx context.Context, name, text string) *report.Report {
	clauses := p.splitter.Split(text)

	if p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, "%s: %d clauses\n", name, len(clauses))
	}

	evaluation := p.evaluator.Evaluate(ctx, clauses, p.ruleSet)
	return report.New(name, evaluation)
}

// EvaluateFile loads and screens one document from disk
func (p *Pipeline) EvaluateFile(ctx context.Context, path string) (*report.Report, error) {
	text, err := ingest.ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", path, err)
	}

	return p.EvaluateText(ctx, filepath.Base(path), text), nil
}
