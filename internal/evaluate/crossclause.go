package evaluate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mhollstein/clausescreen/internal/model"
)

// ConsistencyCheckName is the fixed name of the document-level check
const ConsistencyCheckName = "Cross-Clause Consistency"

const consistentEvidence = "All values are consistent across clauses."

var (
	// Locale-formatted amounts: digit groups with optional thousand
	// separators and a decimal part (e.g. 388.269,00 or 40,000.00)
	amountRe = regexp.MustCompile(`\b\d{1,3}(?:[,.]\d{3})*(?:\.\d+)?\b`)

	// ISO currency codes or common symbols
	currencyRe = regexp.MustCompile(`\b[A-Z]{3}\b|[$€£¥]`)

	// Contract numbers of the form PR+123456789
	contractRe = regexp.MustCompile(`\bPR\+\d{9}\b`)
)

// Facts are the atomic values extracted from one clause for the
// document-level consistency check
type Facts struct {
	Amounts     []string
	Currencies  []string
	ContractNos []string
}

// ExtractFacts pulls amount, currency and contract-number tokens from a
// clause. Extraction is independent of rule evaluation.
func ExtractFacts(clauseText string) Facts {
	return Facts{
		Amounts:     amountRe.FindAllString(clauseText, -1),
		Currencies:  currencyRe.FindAllString(clauseText, -1),
		ContractNos: contractRe.FindAllString(clauseText, -1),
	}
}

// CheckConsistency aggregates facts across all clauses of a document and
// reports RED when any category carries more than one distinct value.
// There is exactly one consistency record per document evaluation.
func CheckConsistency(facts []Facts) model.DocumentCheck {
	var amounts, currencies, contractNos []string
	for _, f := range facts {
		amounts = append(amounts, f.Amounts...)
		currencies = append(currencies, f.Currencies...)
		contractNos = append(contractNos, f.ContractNos...)
	}

	var parts []string
	if distinct := distinctSorted(amounts); len(distinct) > 1 {
		parts = append(parts, fmt.Sprintf("Inconsistent amounts found: [%s]", strings.Join(distinct, ", ")))
	}
	if distinct := distinctSorted(currencies); len(distinct) > 1 {
		parts = append(parts, fmt.Sprintf("Inconsistent currencies found: [%s]", strings.Join(distinct, ", ")))
	}
	if distinct := distinctSorted(contractNos); len(distinct) > 1 {
		parts = append(parts, fmt.Sprintf("Inconsistent contract numbers found: [%s]", strings.Join(distinct, ", ")))
	}

	check := model.DocumentCheck{
		CheckName: ConsistencyCheckName,
		Verdict:   model.VerdictGreen,
		Evidence:  consistentEvidence,
	}
	if len(parts) > 0 {
		check.Verdict = model.VerdictRed
		check.Evidence = strings.Join(parts, " ")
	}

	return check
}

// distinctSorted returns the unique values in deterministic order
func distinctSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
