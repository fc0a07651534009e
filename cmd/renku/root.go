package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/keremk/renku/internal/domain/blueprint"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "renku",
	Short: "A declarative multi-provider generation pipeline",
	Long: `Renku turns declarative blueprints into multi-stage, multi-provider
generation pipelines: named inputs, producers, data-flow connections,
loops, collectors, and conditional branches, composed recursively.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(versionCmd)
}

// formatError returns a user-friendly error message.
// With verbose=true it also shows the underlying technical error.
func formatError(err error) string {
	var loadErr *blueprint.LoadError
	if errors.As(err, &loadErr) {
		msg := loadErr.Message
		if loadErr.Path != "" {
			msg += fmt.Sprintf(" (at %s)", loadErr.Path)
		}
		if loadErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", loadErr.Suggestion)
		}
		if verbose && loadErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", loadErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}
