package mermaid

import "strings"

// FallbackID names nodes whose identifier sanitizes down to nothing.
const FallbackID = "node"

// SanitizeID maps an arbitrary identifier onto the alphabet Mermaid
// accepts for unquoted node IDs. Characters outside [A-Za-z0-9_-]
// become underscores, runs of underscores collapse to one, leading and
// trailing underscores are trimmed, and a leading digit or dash gets a
// fixed letter prefix. Sanitizing is deterministic: edges are wired by
// re-deriving the same ID from the same source identifier elsewhere in
// a generator, so the same input must always yield the same ID.
func SanitizeID(id string) string {
	var sb strings.Builder
	sb.Grow(len(id))
	prevUnderscore := false
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
			prevUnderscore = false
		default:
			// Both literal underscores and replaced characters land
			// here so runs collapse either way.
			if !prevUnderscore {
				sb.WriteByte('_')
			}
			prevUnderscore = true
		}
	}

	s := strings.Trim(sb.String(), "_")
	if s == "" {
		return FallbackID
	}
	if c := s[0]; (c >= '0' && c <= '9') || c == '-' {
		s = "n" + s
	}
	return s
}

// EscapeLabel makes text safe inside a quoted Mermaid label. Double
// quotes become the #quot; entity and newlines fold into <br/> breaks.
// Angle brackets pass through untouched so labels can carry <b> and
// <br/> markup of their own.
func EscapeLabel(s string) string {
	s = strings.ReplaceAll(s, `"`, "#quot;")
	s = strings.ReplaceAll(s, "\r\n", "<br/>")
	s = strings.ReplaceAll(s, "\n", "<br/>")
	return s
}
