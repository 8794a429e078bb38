// Package grammar provides the external grammar-checking collaborator
// behind a narrow interface. The engine only needs an issue count; any
// failure of the underlying service degrades the affected rule result to
// N/A and never aborts a document evaluation.
package grammar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mhollstein/clausescreen/internal/model"
)

// Checker counts discrete grammar issues in a text span. Implementations
// wrap possibly-stateful external services; callers must treat Check as
// fallible and bound it with a context deadline.
type Checker interface {
	// Name returns the provider name
	Name() string

	// Check returns the number of grammar issues found in text
	Check(ctx context.Context, text string) (int, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// Config holds grammar checker configuration
type Config struct {
	// Provider name: "languagetool", "openai", "" (disabled)
	Provider string

	// Language code passed to the checker (e.g., "en-US", "de-DE")
	Language string

	// BaseURL for custom endpoints (e.g., self-hosted LanguageTool)
	BaseURL string

	// APIKey for OpenAI
	APIKey string

	// Model name for LLM-backed checkers
	Model string

	// Timeout bounds a single Check call
	Timeout time.Duration

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider: "", // Disabled by default
		Language: "en-US",
		Timeout:  15 * time.Second,
	}
}

// ConfigFromModel converts model.GrammarConfig to grammar.Config
func ConfigFromModel(mc model.GrammarConfig) Config {
	return Config{
		Provider: mc.Provider,
		Language: mc.Language,
		BaseURL:  mc.BaseURL,
		APIKey:   mc.APIKey,
		Model:    mc.Model,
		Timeout:  mc.Timeout,
	}
}

// NewChecker creates a grammar checker based on configuration. An empty
// provider returns (nil, nil): grammar checking disabled.
func NewChecker(config Config) (Checker, error) {
	switch strings.ToLower(config.Provider) {
	case "languagetool":
		return NewLanguageToolChecker(config)

	case "openai":
		return NewOpenAIChecker(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown grammar provider: %s (supported: languagetool, openai)", config.Provider)
	}
}
