package entries

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dart-sh/dart/internal/domain"
)

// ConfigTable is the reserved top-level table name. It carries file-level
// settings instead of an entry.
const ConfigTable = "config"

// Loader reads and parses the TOML entry file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given entry file path.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads the entry file and parses it. The returned entries keep the
// order they appear in the file; any failure is fatal and yields no partial
// result.
func (l *Loader) Load() ([]domain.Entry, domain.Settings, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, domain.Settings{}, fmt.Errorf("failed to read entry file: %w", err)
	}
	return Parse(string(data))
}

// rawEntry mirrors one entry table as written in TOML. Unrecognized keys are
// ignored, not fatal.
type rawEntry struct {
	Location    *string  `toml:"location"`
	System      *string  `toml:"system"`
	URL         *string  `toml:"url"`
	Keyword     string   `toml:"keyword"`
	Escape      *bool    `toml:"escape"`
	Desc        string   `toml:"desc"`
	Description string   `toml:"description"`
	Icon        string   `toml:"icon"`
	Tags        []string `toml:"tags"`
}

// rawSettings mirrors the reserved config table. Unknown settings are
// allowed and ignored.
type rawSettings struct {
	MaxResults int `toml:"max_results"`
}

// Parse turns TOML source text into entries plus file-level settings.
//
// Every top-level table except the reserved config table becomes one entry,
// keyed by the table name, in source order. Top-level values that are not
// tables, entries with no target variant, and entries with more than one
// target variant are all fatal.
func Parse(text string) ([]domain.Entry, domain.Settings, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(text, &raw)
	if err != nil {
		return nil, domain.Settings{}, &ParseError{Kind: KindSyntax, Err: err}
	}

	var settings domain.Settings
	var out []domain.Entry

	// md.Keys preserves the order keys appear in the source, which is what
	// assigns each entry its tie-break position.
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue // nested key, handled by its table's decode
		}
		name := key[0]

		if name == ConfigTable {
			var rs rawSettings
			if err := md.PrimitiveDecode(raw[name], &rs); err != nil {
				return nil, domain.Settings{}, &ParseError{Kind: KindSyntax, Entry: name, Err: err}
			}
			settings = domain.Settings{MaxResults: rs.MaxResults}
			continue
		}

		if md.Type(name) != "Hash" {
			return nil, domain.Settings{}, &ParseError{Kind: KindBareEntry, Entry: name}
		}

		var re rawEntry
		if err := md.PrimitiveDecode(raw[name], &re); err != nil {
			return nil, domain.Settings{}, &ParseError{Kind: KindSyntax, Entry: name, Err: err}
		}

		entry, err := buildEntry(name, re)
		if err != nil {
			return nil, domain.Settings{}, err
		}
		out = append(out, entry)
	}

	return out, settings, nil
}

// buildEntry resolves the raw table into a typed entry: picks the single
// target variant, applies the escape default, and collapses the desc alias.
func buildEntry(name string, re rawEntry) (domain.Entry, error) {
	var target domain.Target
	variants := 0
	if re.Location != nil {
		target = domain.Target{Kind: domain.KindLocation, Value: *re.Location}
		variants++
	}
	if re.System != nil {
		target = domain.Target{Kind: domain.KindSystem, Value: *re.System}
		variants++
	}
	if re.URL != nil {
		target = domain.Target{Kind: domain.KindURL, Value: *re.URL}
		variants++
	}

	switch {
	case variants == 0:
		return domain.Entry{}, &ParseError{Kind: KindMissingTarget, Entry: name}
	case variants > 1:
		return domain.Entry{}, &ParseError{Kind: KindConflictingTarget, Entry: name}
	}

	// url entries escape by default; an explicit escape key always wins.
	escape := target.Kind == domain.KindURL
	if re.Escape != nil {
		escape = *re.Escape
	}

	// description wins over its desc alias when both are present.
	description := re.Description
	if description == "" {
		description = re.Desc
	}

	return domain.Entry{
		Name:        name,
		Target:      target,
		Keyword:     re.Keyword,
		Escape:      escape,
		Tags:        re.Tags,
		Description: description,
		Icon:        re.Icon,
	}, nil
}
