package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mhollstein/clausescreen/internal/report"
)

// Evaluator defines the interface for screening a single document
type Evaluator interface {
	EvaluateFile(ctx context.Context, path string) (*report.Report, error)
}

// EvalJob represents a document evaluation job
type EvalJob struct {
	Path      string
	Evaluator Evaluator
}

// Execute executes the evaluation job
func (j *EvalJob) Execute(ctx context.Context) Result {
	rep, err := j.Evaluator.EvaluateFile(ctx, j.Path)
	return &EvalResult{
		Path:   j.Path,
		Report: rep,
		Error:  err,
	}
}

// EvalResult represents the result of one document evaluation
type EvalResult struct {
	Path   string
	Report *report.Report
	Error  error
}

// GetError returns the error from the evaluation result
func (r *EvalResult) GetError() error {
	return r.Error
}

// BatchProcessor screens multiple documents concurrently
type BatchProcessor struct {
	evaluator   Evaluator
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(evaluator Evaluator, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		evaluator:   evaluator,
		concurrency: concurrency,
	}
}

// ProcessPaths screens multiple documents concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*EvalResult {
	if len(paths) == 0 {
		return []*EvalResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		job := &EvalJob{
			Path:      path,
			Evaluator: b.evaluator,
		}
		pool.Submit(job)
	}

	results := pool.Wait()

	evalResults := make([]*EvalResult, len(results))
	for i, result := range results {
		evalResults[i] = result.(*EvalResult)
	}

	return evalResults
}

// ProcessDir screens every document found directly in dir
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string) ([]*EvalResult, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// documentExtensions lists the file types the pipeline can ingest
var documentExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".html": true,
	".htm":  true,
}

// ListDocuments returns the screenable files directly inside dir, sorted
// by name. Subdirectories are not descended into.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if documentExtensions[ext] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
