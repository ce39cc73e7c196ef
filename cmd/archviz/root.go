package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "archviz",
	Short: "ArchViz turns infrastructure-as-code into Mermaid diagrams",
	Long: `ArchViz reads Docker Compose files, Kubernetes manifests, Terraform
configurations, CloudFormation and ARM templates or IBM Cloud definitions,
detects the format on its own and turns the document into Mermaid markup.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// loggerFor builds the structured logger honoring the --verbose flag.
func loggerFor(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.ForVerbosity(verbose)
}

// locationFromArgs resolves the document location; no argument means stdin.
func locationFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "-"
}
