package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config holds the complete runtime configuration
type Config struct {
	Splitter    SplitterConfig    `yaml:"splitter" json:"splitter"`
	Grammar     GrammarConfig     `yaml:"grammar" json:"grammar"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// SplitterConfig bounds clause sizes
type SplitterConfig struct {
	MinWords int `yaml:"min_words" json:"min_words"` // Clauses below this are discarded
	MaxWords int `yaml:"max_words" json:"max_words"` // Candidates above this are re-split by sentence
}

// GrammarConfig configures the external grammar-checking service
type GrammarConfig struct {
	Provider          string        `yaml:"provider" json:"provider"` // "languagetool", "openai", "" (disabled)
	Language          string        `yaml:"language" json:"language"` // BCP 47 code passed to the checker
	BaseURL           string        `yaml:"base_url" json:"base_url"` // Custom endpoint (e.g., self-hosted LanguageTool)
	APIKey            string        `yaml:"-" json:"-"`               // Never serialized; from env
	Model             string        `yaml:"model" json:"model"`       // Model name for LLM-backed checkers
	Timeout           time.Duration `yaml:"timeout" json:"timeout"`   // Per-call bound; timeout degrades to N/A
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int           `yaml:"burst" json:"burst"`
}

// CacheConfig configures grammar-result caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"` // Documents evaluated in parallel
}

// OutputConfig configures report output
type OutputConfig struct {
	Verbose   bool   `yaml:"verbose" json:"verbose"`
	OutputDir string `yaml:"output_dir" json:"output_dir"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	cacheDir := ".clausescreen-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".clausescreen", "cache")
	}

	return &Config{
		Splitter: SplitterConfig{
			MinWords: 20,
			MaxWords: 150,
		},
		Grammar: GrammarConfig{
			Provider:          "", // Disabled by default
			Language:          "en-US",
			Timeout:           15 * time.Second,
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			Verbose:   false,
			OutputDir: "output",
		},
	}
}
