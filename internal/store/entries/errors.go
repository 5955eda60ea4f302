package entries

import "fmt"

// ParseErrorKind classifies fatal load failures.
type ParseErrorKind int

const (
	// KindSyntax is a malformed TOML source. No partial database is
	// produced.
	KindSyntax ParseErrorKind = iota
	// KindBareEntry is a top-level key that is not a table. Entries can
	// only be TOML tables.
	KindBareEntry
	// KindMissingTarget is an entry table that names no target variant.
	KindMissingTarget
	// KindConflictingTarget is an entry table that names more than one of
	// location/system/url.
	KindConflictingTarget
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindBareEntry:
		return "bare entry"
	case KindMissingTarget:
		return "missing target"
	case KindConflictingTarget:
		return "conflicting target"
	default:
		return "unknown"
	}
}

// ParseError is the structured, fatal result of a failed load. Entry names
// the offending table when one is known.
type ParseError struct {
	Kind  ParseErrorKind
	Entry string
	Err   error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindBareEntry:
		return fmt.Sprintf("invalid entry '%s': entries can only be TOML tables", e.Entry)
	case KindMissingTarget:
		return fmt.Sprintf("invalid entry '%s': one of location/system/url is required", e.Entry)
	case KindConflictingTarget:
		return fmt.Sprintf("invalid entry '%s': only one of location/system/url is allowed", e.Entry)
	default:
		if e.Entry != "" {
			return fmt.Sprintf("toml error in entry '%s': %v", e.Entry, e.Err)
		}
		return fmt.Sprintf("toml error: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
