package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/presentation/report"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/presentation/tui"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/source"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [location]",
	Short: "Generate a Mermaid diagram from an infrastructure document",
	Long: `Reads an infrastructure-as-code document from a file path, URL or stdin (-),
detects its format and prints Mermaid diagram markup.

In a terminal the result is shown as a rendered analysis report. When piped,
raw Mermaid markup goes to stdout and warnings to stderr, so the output can
feed straight into other tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		location := locationFromArgs(args)
		output, _ := cmd.Flags().GetString("output")
		logger := loggerFor(cmd)

		ctx := context.Background()
		text, err := source.New().Load(ctx, location)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading document: %v\n", err)
			os.Exit(1)
		}

		pipeline := visualizer.New(visualizer.WithLogger(logger))
		res, err := pipeline.Generate(ctx, text)
		if err != nil {
			reportFailure(err)
			os.Exit(1)
		}

		if output != "" {
			if err := os.WriteFile(output, []byte(res.Markup), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
				os.Exit(1)
			}
			fmt.Printf("Diagram written to %s\n", output)
			return
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner(strings.TrimSpace(visualizer.Version))
			render := tui.NewRenderer()
			fmt.Print(render(report.Build(res)))
			return
		}

		// Piped: stdout stays pure markup, warnings go to stderr.
		for _, issue := range res.Issues {
			fmt.Fprintln(os.Stderr, report.IssueLine(issue))
		}
		fmt.Print(res.Markup)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", "", "Write the Mermaid markup to a file instead of stdout")
}

func reportFailure(err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintln(os.Stderr, "Validation failed:")
		for _, issue := range validationErr.Issues {
			fmt.Fprintln(os.Stderr, "  "+report.IssueLine(issue))
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
