package entries

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dart-sh/dart/internal/domain"
)

func parseOne(t *testing.T, text string) domain.Entry {
	t.Helper()
	out, _, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("Parse() returned %d entries, want 1", len(out))
	}
	return out[0]
}

func TestParseSingleEntry(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want domain.Entry
	}{
		{
			name: "location with tags and description",
			toml: `['foo.txt']
tags = ["foo", 'bar', 'baz']
description = "asdf"
location = "test/location"`,
			want: domain.Entry{
				Name:        "foo.txt",
				Target:      domain.Target{Kind: domain.KindLocation, Value: "test/location"},
				Tags:        []string{"foo", "bar", "baz"},
				Description: "asdf",
			},
		},
		{
			name: "bare location",
			toml: `['foo.txt']
location = "test/location"`,
			want: domain.Entry{
				Name:   "foo.txt",
				Target: domain.Target{Kind: domain.KindLocation, Value: "test/location"},
			},
		},
		{
			name: "desc alias",
			toml: `['foo.txt']
desc = "asdf"
location = "foo.txt"`,
			want: domain.Entry{
				Name:        "foo.txt",
				Target:      domain.Target{Kind: domain.KindLocation, Value: "foo.txt"},
				Description: "asdf",
			},
		},
		{
			name: "description wins over desc",
			toml: `['foo.txt']
desc = "loses"
description = "wins"
location = "foo.txt"`,
			want: domain.Entry{
				Name:        "foo.txt",
				Target:      domain.Target{Kind: domain.KindLocation, Value: "foo.txt"},
				Description: "wins",
			},
		},
		{
			name: "system entry",
			toml: `['run backup']
system = 'foo bar'
tags = ["foo"]`,
			want: domain.Entry{
				Name:   "run backup",
				Target: domain.Target{Kind: domain.KindSystem, Value: "foo bar"},
				Tags:   []string{"foo"},
			},
		},
		{
			name: "url entry escapes by default",
			toml: `['Search: %s']
url = 'https://example.com/?q=%s'
keyword = 's'`,
			want: domain.Entry{
				Name:    "Search: %s",
				Target:  domain.Target{Kind: domain.KindURL, Value: "https://example.com/?q=%s"},
				Keyword: "s",
				Escape:  true,
			},
		},
		{
			name: "explicit escape disables url default",
			toml: `['raw url']
url = 'https://example.com/%s'
keyword = 'r'
escape = false`,
			want: domain.Entry{
				Name:    "raw url",
				Target:  domain.Target{Kind: domain.KindURL, Value: "https://example.com/%s"},
				Keyword: "r",
			},
		},
		{
			name: "explicit escape on a system entry",
			toml: `['escaped cmd']
system = 'cmd %s'
keyword = 'c'
escape = true`,
			want: domain.Entry{
				Name:    "escaped cmd",
				Target:  domain.Target{Kind: domain.KindSystem, Value: "cmd %s"},
				Keyword: "c",
				Escape:  true,
			},
		},
		{
			name: "icon is carried",
			toml: `['foo']
location = "bar"
icon = "icons/foo.png"`,
			want: domain.Entry{
				Name:   "foo",
				Target: domain.Target{Kind: domain.KindLocation, Value: "bar"},
				Icon:   "icons/foo.png",
			},
		},
		{
			name: "unrecognized keys are ignored",
			toml: `['foo']
location = "bar"
not_a_real_key = 42`,
			want: domain.Entry{
				Name:   "foo",
				Target: domain.Target{Kind: domain.KindLocation, Value: "bar"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOne(t, tt.toml)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseEmptySource(t *testing.T) {
	out, settings, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Parse(\"\") returned %d entries", len(out))
	}
	if settings != (domain.Settings{}) {
		t.Errorf("settings = %+v, want zero value", settings)
	}
}

func TestParsePreservesSourceOrder(t *testing.T) {
	toml := `['first']
location = "a"

['config']
max_results = 3

['second']
location = "b"

['third']
system = "c"`

	out, settings, err := Parse(toml)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	wantNames := []string{"first", "second", "third"}
	if len(out) != len(wantNames) {
		t.Fatalf("got %d entries, want %d", len(out), len(wantNames))
	}
	for i, want := range wantNames {
		if out[i].Name != want {
			t.Errorf("entry[%d].Name = %q, want %q", i, out[i].Name, want)
		}
	}

	if settings.MaxResults != 3 {
		t.Errorf("settings.MaxResults = %d, want 3", settings.MaxResults)
	}

	db := domain.NewDatabase(out)
	for i := range db.Entries() {
		if db.Get(i).SourceIndex != i {
			t.Errorf("entry %d has SourceIndex %d", i, db.Get(i).SourceIndex)
		}
	}
}

func TestParseConfigTable(t *testing.T) {
	t.Run("unknown settings allowed", func(t *testing.T) {
		_, settings, err := Parse(`['config']
not_a_real_setting = 42`)
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if settings != (domain.Settings{}) {
			t.Errorf("settings = %+v, want zero value", settings)
		}
	})

	t.Run("config is not an entry", func(t *testing.T) {
		out, _, err := Parse(`['config']
max_results = 10`)
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if len(out) != 0 {
			t.Errorf("config table leaked into entries: %v", out)
		}
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		toml      string
		wantKind  ParseErrorKind
		wantEntry string
	}{
		{
			name: "malformed toml",
			toml: `['asdf']
tags = ["foo", 'bar'`,
			wantKind: KindSyntax,
		},
		{
			name:      "bare top-level value",
			toml:      `asdf = "not a table"`,
			wantKind:  KindBareEntry,
			wantEntry: "asdf",
		},
		{
			name: "no target variant",
			toml: `['orphan']
tags = ["foo"]`,
			wantKind:  KindMissingTarget,
			wantEntry: "orphan",
		},
		{
			name: "conflicting target variants",
			toml: `['both']
location = "a"
url = "https://example.com"`,
			wantKind:  KindConflictingTarget,
			wantEntry: "both",
		},
		{
			name: "all three variants",
			toml: `['all']
location = "a"
system = "b"
url = "https://example.com"`,
			wantKind:  KindConflictingTarget,
			wantEntry: "all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := Parse(tt.toml)
			if err == nil {
				t.Fatalf("Parse() succeeded with %v, want %s error", out, tt.wantKind)
			}
			if out != nil {
				t.Errorf("Parse() returned a partial result alongside an error")
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if pe.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", pe.Kind, tt.wantKind)
			}
			if pe.Entry != tt.wantEntry {
				t.Errorf("Entry = %q, want %q", pe.Entry, tt.wantEntry)
			}
		})
	}
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dart.toml")
	content := `['notes']
location = "/home/user/notes.md"
tags = ["text"]`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write entry file: %v", err)
	}

	out, _, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "notes" {
		t.Errorf("Load() = %+v", out)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	_, _, err := NewLoader(filepath.Join(t.TempDir(), "nope.toml")).Load()
	if err == nil {
		t.Fatal("Load() succeeded for a nonexistent file")
	}
}
