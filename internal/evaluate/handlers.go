package evaluate

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/mhollstein/clausescreen/internal/model"
	"github.com/mhollstein/clausescreen/internal/textnorm"
)

// Default fuzzy thresholds when a rule configures none
const (
	defaultGreenThreshold  = 90
	defaultYellowThreshold = 75
	defaultMaxYears        = 6
)

var (
	intRe  = regexp.MustCompile(`\d+`)
	percRe = regexp.MustCompile(`(\d+)\s*%`)
)

// bestPartialMatch scores text against every pattern with a
// substring-tolerant partial ratio in [0,100] and returns the best
// pattern with its score. Both sides are folded (lowercase, diacritics
// stripped) before scoring. Ties keep the earliest pattern.
func bestPartialMatch(text string, patterns []string) (string, int) {
	folded := textnorm.Fold(text)

	best := ""
	bestScore := -1
	for _, pattern := range patterns {
		score := fuzzy.PartialRatio(textnorm.Fold(pattern), folded)
		if score > bestScore {
			best = pattern
			bestScore = score
		}
	}

	return best, bestScore
}

// extractInts returns every plain digit run in the clause as an integer
func extractInts(clauseText string) []int {
	var nums []int
	for _, m := range intRe.FindAllString(clauseText, -1) {
		if n, err := strconv.Atoi(m); err == nil {
			nums = append(nums, n)
		}
	}
	return nums
}

// extractPercentages returns digit runs immediately followed by '%'
func extractPercentages(clauseText string) []int {
	var nums []int
	for _, m := range percRe.FindAllStringSubmatch(clauseText, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			nums = append(nums, n)
		}
	}
	return nums
}

// checkFuzzy pools the patterns of all tiers and grades the best partial
// match against the green/yellow thresholds
func (e *Evaluator) checkFuzzy(_ context.Context, clauseText string, rule model.Rule) (model.Verdict, string) {
	pool := make([]string, 0,
		len(rule.PatternTier(model.TierGreen))+len(rule.PatternTier(model.TierYellow))+len(rule.PatternTier(model.TierRed)))
	pool = append(pool, rule.PatternTier(model.TierGreen)...)
	pool = append(pool, rule.PatternTier(model.TierYellow)...)
	pool = append(pool, rule.PatternTier(model.TierRed)...)

	if len(pool) == 0 {
		return model.VerdictNA, "No patterns defined for fuzzy rule."
	}

	match, score := bestPartialMatch(clauseText, pool)

	if e.recorder != nil {
		e.recorder(rule.ID, score)
	}

	green := rule.Threshold(model.TierGreen, defaultGreenThreshold)
	yellow := rule.Threshold(model.TierYellow, defaultYellowThreshold)

	verdict := model.VerdictRed
	if float64(score) >= green {
		verdict = model.VerdictGreen
	} else if float64(score) >= yellow {
		verdict = model.VerdictYellow
	}

	return verdict, fmt.Sprintf("Best match: '%s' with score %d", match, score)
}

// checkNumeric handles the numeric_* rule types
func (e *Evaluator) checkNumeric(_ context.Context, clauseText string, rule model.Rule) (model.Verdict, string) {
	nums := extractInts(clauseText)

	switch rule.Type {
	case model.RuleNumericAmount:
		if rule.Threshold("amount_presence", 0) == 0 {
			return model.VerdictNA, "No amount_presence threshold configured."
		}
		if len(nums) == 0 {
			return model.VerdictRed, "No amount found."
		}
		return model.VerdictGreen, fmt.Sprintf("Found potential amount(s): %v", nums)

	case model.RuleNumericYears:
		if len(nums) == 0 {
			return model.VerdictNA, "No year value found."
		}
		maxYears := int(rule.Threshold("green_max_years", defaultMaxYears))
		for _, n := range nums {
			if n <= maxYears {
				return model.VerdictGreen, fmt.Sprintf("Found term <= %d years.", maxYears)
			}
		}
		return model.VerdictRed, fmt.Sprintf("Found term > %d years: %d", maxYears, nums[0])

	case model.RuleNumericDays:
		if !rule.HasThreshold("green_min_days") {
			return model.VerdictNA, "No minimum-days threshold configured."
		}
		minDays := int(rule.Threshold("green_min_days", 0))
		for _, n := range nums {
			if n >= minDays {
				return model.VerdictGreen, fmt.Sprintf("Payment period of >= %d days found.", minDays)
			}
		}
		// No qualifying number; vague wording still earns a YELLOW
		if yellowPatterns := rule.PatternTier(model.TierYellow); len(yellowPatterns) > 0 {
			match, score := bestPartialMatch(clauseText, yellowPatterns)
			if score > 80 {
				return model.VerdictYellow, fmt.Sprintf("Vague term found: '%s'", match)
			}
		}
		return model.VerdictRed, fmt.Sprintf("No payment period of at least %d days found.", minDays)

	case model.RuleNumericPercentage:
		percNums := extractPercentages(clauseText)
		if len(percNums) == 0 {
			return model.VerdictNA, "No percentage value found."
		}
		if !rule.HasThreshold("green_max_percent") {
			return model.VerdictNA, "No maximum-percent threshold configured."
		}
		maxPerc := int(rule.Threshold("green_max_percent", 0))
		for _, p := range percNums {
			if p <= maxPerc {
				return model.VerdictGreen, fmt.Sprintf("Found percentage <= %d%%.", maxPerc)
			}
		}
		return model.VerdictRed, fmt.Sprintf("Found percentage > %d%%: %d%%", maxPerc, percNums[0])
	}

	return model.VerdictNA, fmt.Sprintf("Numeric rule type '%s' not implemented.", rule.Type)
}

// checkPresenceInverse flags clauses containing forbidden terms
func (e *Evaluator) checkPresenceInverse(_ context.Context, clauseText string, rule model.Rule) (model.Verdict, string) {
	redPatterns := rule.PatternTier(model.TierRed)
	if len(redPatterns) == 0 {
		return model.VerdictNA, "No red patterns defined for inverse presence rule."
	}

	match, score := bestPartialMatch(clauseText, redPatterns)

	// High threshold: only a near-verbatim occurrence counts as present
	if score > 90 {
		return model.VerdictRed, fmt.Sprintf("Found forbidden term: '%s'", match)
	}
	return model.VerdictGreen, "No forbidden terms found."
}

// checkGrammarCount queries the injected grammar checker and grades the
// issue count. Any checker failure degrades to N/A, never an abort.
func (e *Evaluator) checkGrammarCount(ctx context.Context, clauseText string, _ model.Rule) (model.Verdict, string) {
	if e.checker == nil {
		return model.VerdictNA, "Grammar checker not configured."
	}

	count, err := e.checker.Check(ctx, clauseText)
	if err != nil {
		return model.VerdictNA, fmt.Sprintf("Grammar check failed: %v", err)
	}

	verdict := model.VerdictRed
	switch {
	case count == 0:
		verdict = model.VerdictGreen
	case count <= 5:
		verdict = model.VerdictYellow
	}

	return verdict, fmt.Sprintf("Found %d grammar issues.", count)
}

// checkNotApplicable covers rule types that carry no clause-level meaning
func (e *Evaluator) checkNotApplicable(_ context.Context, _ string, rule model.Rule) (model.Verdict, string) {
	return model.VerdictNA, fmt.Sprintf("Rule type '%s' is not applicable to a single clause.", rule.Type)
}
