package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/presentation/report"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/presentation/tui"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/source"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [location]",
	Short: "Check an infrastructure document for problems",
	Long: `Parses and validates a document, printing every finding.
Error findings make the command exit non-zero; warnings do not.`,
	Run: func(cmd *cobra.Command, args []string) {
		location := locationFromArgs(args)

		ctx := context.Background()
		text, err := source.New().Load(ctx, location)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading document: %v\n", err)
			os.Exit(1)
		}

		pipeline := visualizer.New(visualizer.WithLogger(loggerFor(cmd)))
		format, rep, err := pipeline.Validate(ctx, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}

		interactive := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Printf("Format: %s\n", format)
		for _, issue := range rep.Issues {
			line := report.IssueLine(issue)
			if interactive {
				line = tui.ColorIssue(line, issue.Severity)
			}
			fmt.Println(line)
		}

		if !rep.Valid {
			os.Exit(1)
		}
		fmt.Println("Document is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
