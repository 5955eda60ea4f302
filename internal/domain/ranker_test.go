package domain

import (
	"reflect"
	"testing"
)

func testDatabase() *Database {
	return NewDatabase([]Entry{
		{
			Name:   "foo",
			Target: Target{Kind: KindLocation, Value: "test/location"},
			Tags:   []string{"foo", "bar", "quu"},
		},
		{
			Name:   "asdf",
			Target: Target{Kind: KindLocation, Value: "test/location"},
			Tags:   []string{"bar", "quux"},
		},
	})
}

func rankedNames(db *Database, query string, limit int) []string {
	matches := Rank(db, ParseQuery(query), limit)
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Entry.Name
	}
	return names
}

func TestRankOrdering(t *testing.T) {
	db := testDatabase()

	tests := []struct {
		query string
		want  []string
	}{
		{"fo", []string{"foo"}},
		{"foo", []string{"foo"}},
		// equal scores prefer the entry appearing later in the source
		{"bar", []string{"asdf", "foo"}},
		{"asd", []string{"asdf"}},
		{"asdf", []string{"asdf"}},
		// quu is a full tag for foo but only a prefix tag for asdf
		{"quu", []string{"foo", "asdf"}},
		{"quux", []string{"asdf"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := rankedNames(db, tt.query, 0)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Rank(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestRankTruncation(t *testing.T) {
	entries := make([]Entry, 10)
	for i := range entries {
		entries[i] = Entry{
			Name:   "entry",
			Target: Target{Kind: KindLocation, Value: "loc"},
			Tags:   []string{"shared"},
		}
	}
	db := NewDatabase(entries)

	matches := Rank(db, ParseQuery("shared"), 3)
	if len(matches) != 3 {
		t.Fatalf("len(matches) = %d, want 3", len(matches))
	}

	// all scores equal, so the highest source indices win, in descending
	// order
	wantIdx := []int{9, 8, 7}
	for i, m := range matches {
		if m.Entry.SourceIndex != wantIdx[i] {
			t.Errorf("matches[%d].SourceIndex = %d, want %d", i, m.Entry.SourceIndex, wantIdx[i])
		}
	}

	// default limit applies when the caller passes none
	matches = Rank(db, ParseQuery("shared"), 0)
	if len(matches) != DefaultMaxResults {
		t.Errorf("len(matches) = %d, want default %d", len(matches), DefaultMaxResults)
	}
}

func TestRankScoresArePositive(t *testing.T) {
	db := testDatabase()

	for _, query := range []string{"foo", "bar", "quu", "xyz", ""} {
		for _, m := range Rank(db, ParseQuery(query), 0) {
			if m.Score <= 0 {
				t.Errorf("query %q returned match %q with score %d", query, m.Entry.Name, m.Score)
			}
		}
	}
}

func TestRankIdempotence(t *testing.T) {
	db := testDatabase()
	q := ParseQuery("bar")

	first := Rank(db, q, 0)
	second := Rank(db, q, 0)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Rank is not deterministic: %v vs %v", first, second)
	}
}

func TestRankEndToEndScenario(t *testing.T) {
	db := NewDatabase([]Entry{
		{
			Name:   "Open Calculator",
			Target: Target{Kind: KindLocation, Value: "gnome-calculator"},
			Tags:   []string{"math", "work"},
		},
		{
			Name:    "Search DuckDuckGo: %s",
			Target:  Target{Kind: KindURL, Value: "https://duckduckgo.com/?q=%s"},
			Keyword: "ddg",
			Escape:  true,
		},
	})

	// tag query returns only the calculator
	matches := Rank(db, ParseQuery("math"), 0)
	if len(matches) != 1 || matches[0].Entry.Name != "Open Calculator" {
		t.Fatalf("Rank(math) = %v, want only calculator", matches)
	}
	if matches[0].Score != ScoreFullTag {
		t.Errorf("score = %d, want %d", matches[0].Score, ScoreFullTag)
	}

	// keyword query returns only the search entry at full keyword weight
	q := ParseQuery("ddg test")
	matches = Rank(db, q, 0)
	if len(matches) != 1 || matches[0].Entry.Keyword != "ddg" {
		t.Fatalf("Rank(ddg test) = %v, want only the ddg entry", matches)
	}
	if matches[0].Score != ScoreFullKeyword {
		t.Errorf("score = %d, want %d", matches[0].Score, ScoreFullKeyword)
	}

	if got := ResolveTarget(matches[0].Entry, q); got != "https://duckduckgo.com/?q=test" {
		t.Errorf("ResolveTarget = %q", got)
	}
}
