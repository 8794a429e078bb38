package model

// Verdict is the outcome of a single rule applied to a single clause
type Verdict string

const (
	VerdictGreen  Verdict = "GREEN"  // Clause satisfies the rule
	VerdictYellow Verdict = "YELLOW" // Clause is borderline, needs review
	VerdictRed    Verdict = "RED"    // Clause violates the rule
	VerdictNA     Verdict = "N/A"    // Rule could not produce a judgment for this clause
)

// Rank orders verdicts by severity: GREEN < YELLOW < RED.
// N/A ranks below GREEN because it carries no judgment.
func (v Verdict) Rank() int {
	switch v {
	case VerdictGreen:
		return 1
	case VerdictYellow:
		return 2
	case VerdictRed:
		return 3
	default:
		return 0
	}
}

// Worse returns the more severe of the two verdicts
func (v Verdict) Worse(other Verdict) Verdict {
	if other.Rank() > v.Rank() {
		return other
	}
	return v
}
