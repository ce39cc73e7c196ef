package diagram

import (
	"fmt"
	"strings"
)

// maxValueLen caps attribute values in node labels; anything longer is
// cut with an ellipsis so verbose input cannot blow up label size.
const maxValueLen = 20

func truncate(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxValueLen {
		return s
	}
	return string(runes[:maxValueLen]) + "..."
}

// labelLines joins label fragments with Mermaid line breaks, dropping
// empties so optional attributes collapse cleanly.
func labelLines(lines ...string) string {
	kept := lines[:0:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "<br/>")
}

func boldName(name string) string {
	return fmt.Sprintf("<b>%s</b>", name)
}

// capped bounds a fragment list at max entries, folding the overflow
// into a trailing "+N more".
func capped(parts []string, max int) []string {
	if len(parts) <= max {
		return parts
	}
	hidden := len(parts) - max
	return append(parts[:max], fmt.Sprintf("+%d more", hidden))
}
