package split

import (
	"regexp"
	"strings"

	"github.com/mhollstein/clausescreen/internal/model"
)

// Default word-count bounds for a clause
const (
	DefaultMinWords = 20
	DefaultMaxWords = 150
)

// delimiter is injected before marker matches; it must not occur in input
// text that survives normalization.
const delimiter = "¶"

// markerPatterns is the fixed catalogue of clause-boundary markers:
// numbered-list heads, section-symbol references, and legal boilerplate
// phrases in German and English guarantee documents.
var markerPatterns = []string{
	`\n\s*\d+\.`, // numbered list " 1."
	`§\s*\d+`,    // § 770
	`Wir verpflichten uns`,
	`Wir verzichten`,
	`Auf die Einreden`,
	`Diese Bürgschaft ist unbefristet`,
	`Diese Bürgschaft erlischt`,
	`Gerichtsstand ist`,
	`unterliegt dem`,
	`Sollte eine Bestimmung`,
	`We undertake to`,
	`We waive`,
	`This guarantee (?:shall|expires)`,
}

var (
	markRe  = regexp.MustCompile(`(?i)(` + strings.Join(markerPatterns, "|") + `)`)
	splitRe = regexp.MustCompile(delimiter + `|\n{2,}`)
	spaceRe = regexp.MustCompile(`[ \t]+`)
)

// Splitter turns raw document text into an ordered sequence of clauses,
// each within the configured word-count bounds. Split is a pure function;
// a Splitter is safe for concurrent use.
type Splitter struct {
	minWords int
	maxWords int
}

// NewSplitter creates a splitter with the given bounds. Non-positive
// values fall back to the defaults.
func NewSplitter(minWords, maxWords int) *Splitter {
	if minWords <= 0 {
		minWords = DefaultMinWords
	}
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	return &Splitter{minWords: minWords, maxWords: maxWords}
}

// Split segments text into clauses. Empty or whitespace-only input yields
// an empty sequence, not an error.
//
// The pipeline is fixed: normalize whitespace, inject a delimiter before
// every marker match, split on delimiters and hard breaks (2+ newlines),
// re-split oversized candidates by sentence, then discard anything below
// the minimum word count and number the survivors from 1.
func (s *Splitter) Split(text string) []model.Clause {
	clauses := []model.Clause{}
	if strings.TrimSpace(text) == "" {
		return clauses
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = spaceRe.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	injected := markRe.ReplaceAllString(normalized, delimiter+"${1}")

	var candidates []string
	for _, piece := range splitRe.Split(injected, -1) {
		if piece = strings.TrimSpace(piece); piece != "" {
			candidates = append(candidates, piece)
		}
	}

	idx := 0
	for _, candidate := range candidates {
		for _, chunk := range s.splitOversize(candidate) {
			if wordCount(chunk) >= s.minWords {
				idx++
				clauses = append(clauses, model.Clause{Number: idx, Text: chunk})
			}
		}
	}

	return clauses
}

// splitOversize breaks a candidate exceeding the maximum word count into
// sentences and greedily packs them back into groups under the limit.
// A single sentence longer than the limit is emitted as its own group;
// the cap is best-effort for pathological input.
func (s *Splitter) splitOversize(block string) []string {
	if wordCount(block) <= s.maxWords {
		return []string{block}
	}

	var out []string
	var buf string
	for _, sentence := range splitSentences(block) {
		joined := sentence
		if buf != "" {
			joined = buf + " " + sentence
		}
		if wordCount(joined) > s.maxWords {
			if buf != "" {
				out = append(out, buf)
			}
			buf = sentence
		} else {
			buf = joined
		}
	}
	if buf != "" {
		out = append(out, buf)
	}

	return out
}

// splitSentences splits text after '.', '!' or '?' followed by whitespace
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			if i+1 < len(text) && isSpace(text[i+1]) {
				if sentence := strings.TrimSpace(current.String()); sentence != "" {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if sentence := strings.TrimSpace(current.String()); sentence != "" {
		sentences = append(sentences, sentence)
	}

	return sentences
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
