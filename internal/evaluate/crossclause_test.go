package evaluate

import (
	"strings"
	"testing"

	"github.com/mhollstein/clausescreen/internal/model"
)

func TestExtractFacts(t *testing.T) {
	clause := "Der Auftragnehmer zahlt 388.269,00 EUR unter Vertrag PR+123456789."
	facts := ExtractFacts(clause)

	if len(facts.Amounts) == 0 {
		t.Error("expected at least one amount token")
	}
	if len(facts.Currencies) != 1 || facts.Currencies[0] != "EUR" {
		t.Errorf("expected currency EUR, got %v", facts.Currencies)
	}
	if len(facts.ContractNos) != 1 || facts.ContractNos[0] != "PR+123456789" {
		t.Errorf("expected contract number PR+123456789, got %v", facts.ContractNos)
	}
}

func TestExtractFacts_CurrencySymbols(t *testing.T) {
	facts := ExtractFacts("bis zur Gesamthöhe von € zuzüglich Kosten")
	if len(facts.Currencies) != 1 || facts.Currencies[0] != "€" {
		t.Errorf("expected € symbol, got %v", facts.Currencies)
	}
}

func TestCheckConsistency_ConflictingAmounts(t *testing.T) {
	// Two clauses asserting different amounts and nothing else numeric
	facts := []Facts{
		ExtractFacts("The guaranteed sum is 100.00 in words one hundred."),
		ExtractFacts("The guaranteed sum is 200.00 in words two hundred."),
	}

	check := CheckConsistency(facts)
	if check.Verdict != model.VerdictRed {
		t.Fatalf("expected RED for conflicting amounts, got %s", check.Verdict)
	}
	if !strings.Contains(check.Evidence, "100.00") || !strings.Contains(check.Evidence, "200.00") {
		t.Errorf("expected both amounts named in evidence, got %q", check.Evidence)
	}
	if check.CheckName != ConsistencyCheckName {
		t.Errorf("expected check name %q, got %q", ConsistencyCheckName, check.CheckName)
	}
}

func TestCheckConsistency_ConflictingCurrencies(t *testing.T) {
	facts := []Facts{
		{Currencies: []string{"EUR"}},
		{Currencies: []string{"USD"}},
	}

	check := CheckConsistency(facts)
	if check.Verdict != model.VerdictRed {
		t.Fatalf("expected RED for conflicting currencies, got %s", check.Verdict)
	}
	if !strings.Contains(check.Evidence, "EUR") || !strings.Contains(check.Evidence, "USD") {
		t.Errorf("expected both currencies in evidence, got %q", check.Evidence)
	}
}

func TestCheckConsistency_ConflictingContractNumbers(t *testing.T) {
	facts := []Facts{
		{ContractNos: []string{"PR+123456789"}},
		{ContractNos: []string{"PR+987654321"}},
	}

	check := CheckConsistency(facts)
	if check.Verdict != model.VerdictRed {
		t.Fatalf("expected RED for conflicting contract numbers, got %s", check.Verdict)
	}
}

func TestCheckConsistency_RepeatedValueIsConsistent(t *testing.T) {
	facts := []Facts{
		{Amounts: []string{"100.00"}, Currencies: []string{"EUR"}},
		{Amounts: []string{"100.00"}, Currencies: []string{"EUR"}},
	}

	check := CheckConsistency(facts)
	if check.Verdict != model.VerdictGreen {
		t.Fatalf("expected GREEN for repeated identical values, got %s", check.Verdict)
	}
	if check.Evidence != "All values are consistent across clauses." {
		t.Errorf("expected fixed consistent message, got %q", check.Evidence)
	}
}

func TestCheckConsistency_NoFacts(t *testing.T) {
	check := CheckConsistency(nil)
	if check.Verdict != model.VerdictGreen {
		t.Fatalf("expected GREEN with no facts at all, got %s", check.Verdict)
	}
}
