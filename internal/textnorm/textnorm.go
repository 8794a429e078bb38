// Package textnorm normalizes text for fuzzy comparison: lowercase,
// diacritics stripped. Both clauses and rule patterns run through the
// same fold before scoring.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// replacer handles ligatures and letters NFD cannot decompose
var replacer = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
)

// Fold lowercases s and strips combining marks (diacritics), so that
// "Bürgschaft" and "burgschaft" compare equal.
func Fold(s string) string {
	lowered := replacer.Replace(strings.ToLower(s))

	// Decompose, drop combining marks, recompose. The chain is stateful,
	// so build it per call; Fold must stay safe for concurrent use.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return folded
}
