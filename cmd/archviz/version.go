package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	visualizer "github.com/flori950/Architecture-as-Code-Visualizer"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of archviz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("archviz version %s\n", strings.TrimSpace(visualizer.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
