package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a total markdown renderer for terminal output.
// Word wrap is disabled so Mermaid lines inside code fences stay intact
// when users copy them out of the terminal. When glamour cannot render
// (unknown TERM, style detection failure) the markdown passes through
// unchanged instead of failing the command.
func NewRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(0),
	)

	return func(markdown string) string {
		if err != nil {
			return markdown
		}
		pretty, renderErr := r.Render(markdown)
		if renderErr != nil {
			return markdown
		}
		return pretty
	}
}
