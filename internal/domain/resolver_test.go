package domain

import "testing"

func TestSubstitute(t *testing.T) {
	entry := &Entry{Keyword: "k"}

	tests := []struct {
		format string
		param  string
		want   string
	}{
		{"%s", "a", "a"},
		{"test %s", "a", "test a"},
		{"%%s", "a", "%s"},  // %% escapes the percent, leaving no site
		{"%%%s", "a", "%a"}, // literal percent followed by the site
		{"%s", "a a", "a a"},
		{"%s and %s", "a", "a and %s"}, // only the first site substitutes
		{"no placeholder", "a", "no placeholder"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := substitute(entry, tt.format, tt.param); got != tt.want {
				t.Errorf("substitute(%q, %q) = %q, want %q", tt.format, tt.param, got, tt.want)
			}
		})
	}
}

func TestResolveKeywordEntry(t *testing.T) {
	entry := &Entry{
		Name:    "name:%s",
		Target:  Target{Kind: KindLocation, Value: "file/%s"},
		Keyword: "a",
	}

	tests := []struct {
		escape     bool
		searchtext string
		wantName   string
		wantTarget string
	}{
		{false, "a b", "name:b", "file/b"},
		{false, "a B", "name:B", "file/B"},
		{false, "a b c", "name:b c", "file/b c"},
		{true, "a b", "name:b", "file/b"},
		{true, "a b c", "name:b c", "file/b%20c"},
	}

	for _, tt := range tests {
		t.Run(tt.searchtext, func(t *testing.T) {
			e := *entry
			e.Escape = tt.escape
			q := ParseQuery(tt.searchtext)

			if got := ResolveName(&e, q); got != tt.wantName {
				t.Errorf("ResolveName(%q) = %q, want %q", tt.searchtext, got, tt.wantName)
			}
			if got := ResolveTarget(&e, q); got != tt.wantTarget {
				t.Errorf("ResolveTarget(%q) = %q, want %q", tt.searchtext, got, tt.wantTarget)
			}
		})
	}
}

func TestResolveWithoutParameter(t *testing.T) {
	entry := &Entry{
		Name:    "Search: %s",
		Target:  Target{Kind: KindURL, Value: "https://example.com/?q=%s"},
		Keyword: "s",
		Escape:  true,
	}

	// a bare keyword leaves the placeholder visible as a preview; escaping
	// must not touch it (never %25s)
	q := ParseQuery("s")
	if got := ResolveName(entry, q); got != "Search: %s" {
		t.Errorf("ResolveName = %q", got)
	}
	if got := ResolveTarget(entry, q); got != "https://example.com/?q=%s" {
		t.Errorf("ResolveTarget = %q, placeholder must stay literal", got)
	}
}

func TestResolveIgnoresParameterWithoutKeyword(t *testing.T) {
	entry := &Entry{
		Name:   "notes",
		Target: Target{Kind: KindLocation, Value: "/home/user/notes %s.md"},
	}

	// entries without a keyword take no parameter; the string passes
	// through untouched
	q := ParseQuery("notes trailing text")
	if got := ResolveTarget(entry, q); got != "/home/user/notes %s.md" {
		t.Errorf("ResolveTarget = %q", got)
	}
}

func TestEscapingRoundTrip(t *testing.T) {
	urlEntry := &Entry{
		Name:    "search %s",
		Target:  Target{Kind: KindURL, Value: "https://example.com/?q=%s"},
		Keyword: "s",
		Escape:  true,
	}
	locEntry := &Entry{
		Name:    "open %s",
		Target:  Target{Kind: KindLocation, Value: "/data/%s"},
		Keyword: "o",
	}

	q := ParseQuery("s a b")
	if got := ResolveTarget(urlEntry, q); got != "https://example.com/?q=a%20b" {
		t.Errorf("url target = %q, want percent-encoded space", got)
	}

	q = ParseQuery("o a b")
	if got := ResolveTarget(locEntry, q); got != "/data/a b" {
		t.Errorf("location target = %q, want verbatim space", got)
	}
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", "abc"},
		{"a b", "a%20b"},
		{"a+b", "a%2Bb"},
		{"a/b?c=d", "a%2Fb%3Fc%3Dd"},
		{"-_.~", "-_.~"},
		{"é", "%C3%A9"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := percentEncode(tt.in); got != tt.want {
				t.Errorf("percentEncode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
