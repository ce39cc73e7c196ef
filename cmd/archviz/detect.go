package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/source"
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect [location]",
	Short: "Detect the format of an infrastructure document",
	Long: `Classifies a document against the supported formats and prints the match.
Detection never fails: unrecognized input prints "unknown".`,
	Run: func(cmd *cobra.Command, args []string) {
		location := locationFromArgs(args)

		text, err := source.New().Load(context.Background(), location)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading document: %v\n", err)
			os.Exit(1)
		}

		pipeline := visualizer.New(visualizer.WithLogger(loggerFor(cmd)))
		fmt.Println(pipeline.Detect(text))
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
