package evaluate

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// TrainingSample is one raw fuzzy score captured for threshold calibration
type TrainingSample struct {
	RuleID int    `json:"rule_id"`
	Score  int    `json:"score"`
	Label  string `json:"label"` // "good" or "bad", per calibration corpus
}

// TrainingCollector accumulates fuzzy scores during evaluation runs over
// labeled corpora. Safe for concurrent use by parallel document workers.
type TrainingCollector struct {
	mu      sync.Mutex
	label   string
	samples []TrainingSample
}

// NewTrainingCollector creates a collector tagging every sample with label
func NewTrainingCollector(label string) *TrainingCollector {
	return &TrainingCollector{label: label}
}

// Record implements ScoreRecorder
func (c *TrainingCollector) Record(ruleID, score int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples = append(c.samples, TrainingSample{RuleID: ruleID, Score: score, Label: c.label})
}

// Samples returns a copy of everything collected so far
func (c *TrainingCollector) Samples() []TrainingSample {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]TrainingSample, len(c.samples))
	copy(out, c.samples)
	return out
}

// AppendJSON merges the collected samples into the JSON file at path,
// preserving samples from earlier runs over other corpora
func (c *TrainingCollector) AppendJSON(path string) error {
	var existing []TrainingSample
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parse existing training data %s: %w", path, err)
		}
	}

	merged := append(existing, c.Samples()...)
	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal training data: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write training data: %w", err)
	}

	return nil
}
