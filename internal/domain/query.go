package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Query represents one tokenized search input.
type Query struct {
	Raw           string   // original input as typed
	Tokens        []string // non-empty whitespace-delimited tokens, in order
	CaseSensitive bool     // true when the raw input contains an uppercase letter
}

// ParseQuery tokenizes user input. Tokens are split on runs of whitespace and
// keep their input order; the first token is special for keyword matching.
//
// Case rule: a query containing at least one uppercase letter is matched
// case-sensitively, anything else is matched with both sides case-folded.
// This mirrors smartcase behavior in editors.
func ParseQuery(input string) Query {
	return Query{
		Raw:           input,
		Tokens:        strings.Fields(input),
		CaseSensitive: hasUpper(input),
	}
}

// IsEmpty reports whether the query has no tokens. Empty queries yield zero
// results by design.
func (q Query) IsEmpty() bool { return len(q.Tokens) == 0 }

// Parameter returns the text following the first token, verbatim, as the
// keyword parameter. The boolean is false when the input holds no parameter
// (single token or empty).
func (q Query) Parameter() (string, bool) {
	i := strings.IndexFunc(q.Raw, unicode.IsSpace)
	if i < 0 {
		return "", false
	}
	_, w := utf8.DecodeRuneInString(q.Raw[i:])
	return q.Raw[i+w:], true
}

// fold normalizes s for comparison under the query's case mode.
func (q Query) fold(s string) string {
	if q.CaseSensitive {
		return s
	}
	return strings.ToLower(s)
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
