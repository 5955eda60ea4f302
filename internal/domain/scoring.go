package domain

import "strings"

// Scoring weights. Each heuristic carries a distinct weight so a score
// identifies which rule produced it.
const (
	// ScoreFullKeyword fires when the first query token equals the
	// entry's keyword shortcut. It dominates every other heuristic.
	ScoreFullKeyword = 100

	// ScoreFullName fires when a token equals the entry name.
	ScoreFullName = 10

	// ScoreFullTag fires when a token equals some tag.
	ScoreFullTag = 6

	// ScoreStartsWithTag fires when some tag starts with a token.
	ScoreStartsWithTag = 4

	// ScorePartialName fires when the entry name contains a token.
	ScorePartialName = 3

	// ScorePartialTag fires when some tag contains a token.
	ScorePartialTag = 2
)

// Score computes the overall match score of an entry against a query.
//
// Tokens are ANDed: each token is scored independently against the entry's
// name and tags (the best heuristic wins per token) and the overall score is
// the minimum across tokens. A single token that matches nothing zeroes the
// entry out, no matter how well the others match.
//
// Keyword entries get a separate pre-pass: when the first token equals the
// entry's keyword, the entry scores ScoreFullKeyword regardless of how the
// remaining tokens fare. Keyword entries still participate in normal
// scoring, so they show up in ordinary searches too.
func Score(e *Entry, q Query) int {
	if q.IsEmpty() {
		return 0
	}

	keyword := 0
	if e.HasKeyword() && q.fold(e.Keyword) == q.fold(q.Tokens[0]) {
		keyword = ScoreFullKeyword
	}

	name := q.fold(e.Name)
	tags := make([]string, len(e.Tags))
	for i, t := range e.Tags {
		tags[i] = q.fold(t)
	}

	overall := -1
	for _, raw := range q.Tokens {
		s := tokenScore(name, tags, q.fold(raw))
		if overall < 0 || s < overall {
			overall = s
		}
		if overall == 0 {
			break
		}
	}

	if keyword > overall {
		return keyword
	}
	return overall
}

// tokenScore evaluates the per-token heuristics and returns the maximum
// weight that fires. Heuristics are alternative ways of matching, not
// additive evidence.
func tokenScore(name string, tags []string, token string) int {
	best := 0

	if name == token {
		best = ScoreFullName
	} else if strings.Contains(name, token) {
		best = ScorePartialName
	}

	for _, t := range tags {
		switch {
		case t == token:
			if ScoreFullTag > best {
				best = ScoreFullTag
			}
		case strings.HasPrefix(t, token):
			if ScoreStartsWithTag > best {
				best = ScoreStartsWithTag
			}
		case strings.Contains(t, token):
			if ScorePartialTag > best {
				best = ScorePartialTag
			}
		}
	}

	return best
}
