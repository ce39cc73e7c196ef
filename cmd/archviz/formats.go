package main

import (
	"fmt"

	"github.com/spf13/cobra"

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
)

// formatsCmd represents the formats command
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported document formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range visualizer.New().Formats() {
			fmt.Printf("%-16s %s\n", f, f.DisplayName())
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
