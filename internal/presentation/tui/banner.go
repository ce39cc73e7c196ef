package tui

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// PrintBanner outputs the ASCII art banner for interactive sessions.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Cyan-to-indigo gradient, one color per row
	s1 := termenv.String("    _                 _     __     __ _      ").Foreground(p.Color("#67e8f9"))
	s2 := termenv.String("   / \\    _ __   ___ | |__  \\ \\   / /(_) ____").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String("  / _ \\  | '__| / __|| '_ \\  \\ \\ / / | ||_  /").Foreground(p.Color("#38bdf8"))
	s4 := termenv.String(" / ___ \\ | |   | (__ | | | |  \\ V /  | | / / ").Foreground(p.Color("#60a5fa"))
	s5 := termenv.String("/_/   \\_\\|_|    \\___||_| |_|   \\_/   |_|/___|").Foreground(p.Color("#818cf8"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
	fmt.Println(termenv.String("  Architecture-as-Code Visualizer " + version).Faint())
	fmt.Println()
}

// ColorIssue colors a formatted issue line by severity. Terminals
// without color support get the line back unchanged.
func ColorIssue(line string, sev domain.Severity) string {
	p := termenv.ColorProfile()
	if sev == domain.SeverityError {
		return termenv.String(line).Foreground(p.Color("#f87171")).String()
	}
	return termenv.String(line).Foreground(p.Color("#fbbf24")).String()
}
