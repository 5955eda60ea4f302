package domain

import "strings"

// TargetKind selects the variant of a Target.
type TargetKind int

const (
	// KindLocation is a file path or URI opened via the OS default handler.
	KindLocation TargetKind = iota
	// KindSystem is a command line executed via the OS shell.
	KindSystem
	// KindURL is a location whose keyword parameter is percent-encoded
	// before substitution, unless escape is explicitly disabled.
	KindURL
)

func (k TargetKind) String() string {
	switch k {
	case KindLocation:
		return "location"
	case KindSystem:
		return "system"
	case KindURL:
		return "url"
	default:
		return "unknown"
	}
}

// Target describes what an entry opens. Exactly one variant is carried per
// entry; the loader rejects tables with zero or more than one variant key.
type Target struct {
	Kind  TargetKind
	Value string // path, URI or command line, may contain a %s placeholder
}

// Entry is one record of the launcher database.
type Entry struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// Name is the key of the source table. It doubles as display text and
	// may contain a %s placeholder for keyword entries.
	Name string

	// Target is what activating the entry opens.
	Target Target

	// SourceIndex is the ordinal position of the entry in the parsed
	// source. It never changes after construction and is the sole
	// tie-break key during ranking.
	SourceIndex int

	// ─────────────────────────────
	// Matching
	// ─────────────────────────────

	// Keyword is the optional shortcut token. A query whose first token
	// equals the keyword bypasses normal scoring for this entry.
	Keyword string

	// Escape controls whether the keyword parameter is percent-encoded
	// before substitution into the target. Defaults to true for KindURL
	// and false otherwise.
	Escape bool

	// Tags are free-form match labels. Duplicates are harmless.
	Tags []string

	// ─────────────────────────────
	// Presentation (carried, not interpreted)
	// ─────────────────────────────

	Description string
	Icon        string
}

// HasKeyword reports whether the entry accepts a trailing parameter.
func (e *Entry) HasKeyword() bool { return e.Keyword != "" }

// Database is an ordered, immutable collection of entries. It is built once
// per load and replaced wholesale on reload, never mutated in place.
type Database struct {
	entries []Entry
}

// NewDatabase builds a database, assigning each entry its SourceIndex in
// input order.
func NewDatabase(entries []Entry) *Database {
	for i := range entries {
		entries[i].SourceIndex = i
	}
	return &Database{entries: entries}
}

// Entries returns the backing slice in source order. Callers must treat the
// result as read-only.
func (db *Database) Entries() []Entry {
	if db == nil {
		return nil
	}
	return db.entries
}

// Len returns the number of entries.
func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.entries)
}

// Get returns the entry at source index i.
func (db *Database) Get(i int) *Entry {
	return &db.entries[i]
}

// FindByName returns the first entry with the given name, or nil.
func (db *Database) FindByName(name string) *Entry {
	if db == nil {
		return nil
	}
	for i := range db.entries {
		if strings.EqualFold(db.entries[i].Name, name) {
			return &db.entries[i]
		}
	}
	return nil
}
