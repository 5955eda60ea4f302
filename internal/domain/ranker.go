package domain

import "sort"

// Match pairs an entry reference with its overall score for one query.
type Match struct {
	Entry *Entry
	Score int
}

// DefaultMaxResults bounds the result list when the caller passes no
// explicit limit.
const DefaultMaxResults = 5

// Rank scores every entry of the database against the query, drops
// non-matches, orders the survivors and truncates to maxResults.
//
// Ordering is a strict total order: score descending, then SourceIndex
// descending — on equal scores the entry appearing later in the source file
// wins. Because SourceIndex is unique, no two matches ever compare equal,
// which makes the result deterministic for a given (database, query) pair.
//
// Rank is pure: it never mutates the database and holds no state between
// calls. maxResults <= 0 selects DefaultMaxResults.
func Rank(db *Database, q Query, maxResults int) []Match {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	if q.IsEmpty() {
		return nil
	}

	entries := db.Entries()
	matches := make([]Match, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		s := Score(e, q)
		if s == 0 {
			continue
		}
		matches = append(matches, Match{Entry: e, Score: s})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Entry.SourceIndex > matches[j].Entry.SourceIndex
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}
