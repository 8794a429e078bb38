package model

// RuleType identifies the evaluation strategy a rule uses
type RuleType string

const (
	RuleFuzzy             RuleType = "fuzzy"              // Partial-ratio fuzzy matching against tiered patterns
	RuleNumericYears      RuleType = "numeric_years"      // Term length in years against a maximum
	RuleNumericDays       RuleType = "numeric_days"       // Payment period in days against a minimum
	RuleNumericAmount     RuleType = "numeric_amount"     // Presence of a monetary amount
	RuleNumericPercentage RuleType = "numeric_percentage" // Percentage values against a maximum
	RulePresenceInverse   RuleType = "presence_inverse"   // Forbidden-term detection
	RuleFormat            RuleType = "format"             // Document-format checks (not clause-level)
	RuleOCRConfidence     RuleType = "ocr_confidence"     // OCR quality checks (not clause-level)
	RuleGrammarCount      RuleType = "grammar_count"      // Grammar issue counting via external checker
)

// KnownRuleTypes lists every rule type the engine accepts in a rule set
var KnownRuleTypes = []RuleType{
	RuleFuzzy,
	RuleNumericYears,
	RuleNumericDays,
	RuleNumericAmount,
	RuleNumericPercentage,
	RulePresenceInverse,
	RuleFormat,
	RuleOCRConfidence,
	RuleGrammarCount,
}

// Rule is a declarative clause-evaluation specification. Rules are loaded
// once per run and treated as read-only configuration; list order determines
// application priority where priority matters.
type Rule struct {
	ID         int                 `json:"id" yaml:"id"`
	Name       string              `json:"name" yaml:"name"`
	Type       RuleType            `json:"type" yaml:"type"`
	Patterns   map[string][]string `json:"patterns,omitempty" yaml:"patterns,omitempty"`     // tier ("green"/"yellow"/"red") -> pattern strings
	Thresholds map[string]float64  `json:"thresholds,omitempty" yaml:"thresholds,omitempty"` // tier/parameter name -> numeric threshold
}

// Pattern tier names
const (
	TierGreen  = "green"
	TierYellow = "yellow"
	TierRed    = "red"
)

// PatternTier returns the pattern list for a tier, or nil if absent
func (r Rule) PatternTier(tier string) []string {
	if r.Patterns == nil {
		return nil
	}
	return r.Patterns[tier]
}

// Threshold returns the named threshold, falling back to def when unset
func (r Rule) Threshold(name string, def float64) float64 {
	if v, ok := r.Thresholds[name]; ok {
		return v
	}
	return def
}

// HasThreshold reports whether the named threshold is configured
func (r Rule) HasThreshold(name string) bool {
	_, ok := r.Thresholds[name]
	return ok
}
