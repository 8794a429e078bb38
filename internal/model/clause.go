package model

import "strings"

// Clause represents a bounded contiguous span of clause-level text
// extracted from a document by the splitter
type Clause struct {
	Number int    `json:"number"` // Sequence position within the document (1-based)
	Text   string `json:"text"`   // The clause text itself
}

// WordCount returns the number of whitespace-separated words in the clause
func (c Clause) WordCount() int {
	return len(strings.Fields(c.Text))
}
