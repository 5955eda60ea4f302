package domain

import "strings"

// Resolver turns a selected entry plus the typed query into the final target
// string handed to the external opener. It never opens anything itself.
//
// Substitution rules:
//   - entries without a keyword ignore the parameter entirely;
//   - only the first %s in a string is a substitution site;
//   - %% renders a literal percent sign;
//   - when the entry escapes (url entries by default), the parameter is
//     percent-encoded before substitution into the target. The display name
//     always receives the raw parameter.
//
// When the query carries no parameter the placeholder is left as a literal
// %s, so a keyword entry previews its substitution site.

// ResolveTarget produces the final target string for an activated entry.
func ResolveTarget(e *Entry, q Query) string {
	param, ok := q.Parameter()
	if !ok {
		// No parameter: the placeholder stays a literal %s, never encoded.
		return substitute(e, e.Target.Value, "%s")
	}
	if e.Escape {
		param = percentEncode(param)
	}
	return substitute(e, e.Target.Value, param)
}

// ResolveName produces the display name with the raw parameter substituted.
func ResolveName(e *Entry, q Query) string {
	return substitute(e, e.Name, parameterOrPlaceholder(q))
}

func parameterOrPlaceholder(q Query) string {
	param, ok := q.Parameter()
	if !ok {
		return "%s"
	}
	return param
}

// substitute expands %% escapes and replaces the first %s with param.
// Entries without a keyword take no parameter; their strings pass through
// untouched, %% included.
func substitute(e *Entry, format, param string) string {
	if !e.HasKeyword() {
		return format
	}

	pieces := strings.Split(format, "%%")
	replaced := false
	for i, piece := range pieces {
		if replaced {
			break
		}
		if strings.Contains(piece, "%s") {
			pieces[i] = strings.Replace(piece, "%s", param, 1)
			replaced = true
		}
	}
	return strings.Join(pieces, "%")
}

const upperhex = "0123456789ABCDEF"

// percentEncode escapes every byte outside the RFC 3986 unreserved set,
// space included (a space becomes %20, never +).
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}
