package main

import (
	"fmt"

	"github.com/keremk/renku/internal/domain/blueprint"
	"github.com/spf13/cobra"
)

// Version information set by build flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("renku %s\n", version)
		fmt.Printf("  engine: %s\n", blueprint.EngineVersion)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}
