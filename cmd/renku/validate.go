package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/keremk/renku/internal/app"
	"github.com/keremk/renku/internal/domain/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [blueprint]",
	Short: "Validate a blueprint tree without executing it",
	Long: `Validate loads a blueprint and its imported producers, then checks the
composed graph: endpoint resolution, producer contracts, loop and
collector declarations, condition paths, cycles, and dimension
consistency across fan-out/fan-in edges.

Exit codes:
  0 - Valid blueprint
  1 - Validation errors found
  2 - Could not load the blueprint

Examples:
  renku validate blueprint.yaml
  renku validate blueprint.yaml --json
  renku validate blueprint.yaml --errors-only
  renku validate blueprint.yaml --strict`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var (
	validateJSON       bool
	validateErrorsOnly bool
	validateStrict     bool
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output results as JSON")
	validateCmd.Flags().BoolVar(&validateErrorsOnly, "errors-only", false, "Discard warnings from the result")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")
}

func runValidate(_ *cobra.Command, args []string) error {
	path := "blueprint.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	renku := app.New(os.Stdout)
	opts := app.ValidateOptions{
		ErrorsOnly: validateErrorsOnly,
		Quiet:      validateJSON,
	}

	result, err := renku.Validate(context.Background(), path, opts)
	if err != nil {
		if validateJSON {
			outputValidationJSON(os.Stdout, nil, err)
		} else {
			printError(err)
		}
		os.Exit(2)
	}

	if validateJSON {
		outputValidationJSON(os.Stdout, result, nil)
	} else {
		outputValidationText(os.Stdout, result)
	}

	failed := len(result.Errors) > 0 || (validateStrict && len(result.Warnings) > 0)
	if failed {
		os.Exit(1)
	}
	return nil
}

// jsonIssue is the wire shape of one finding.
type jsonIssue struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity string   `json:"severity"`
	Location []string `json:"location"`
	Field    string   `json:"field,omitempty"`
}

func toJSONIssues(issues []validator.Issue) []jsonIssue {
	out := make([]jsonIssue, len(issues))
	for i, is := range issues {
		location := is.Location.NamespacePath
		if location == nil {
			location = []string{}
		}
		out[i] = jsonIssue{
			Code:     string(is.Code),
			Message:  is.Message,
			Severity: string(is.Severity),
			Location: location,
			Field:    is.Location.Field,
		}
	}
	return out
}

func outputValidationJSON(w io.Writer, result *validator.Result, err error) {
	output := struct {
		Valid    bool        `json:"valid"`
		Errors   []jsonIssue `json:"errors,omitempty"`
		Warnings []jsonIssue `json:"warnings,omitempty"`
		Error    string      `json:"error,omitempty"`
	}{}

	if err != nil {
		output.Valid = false
		output.Error = err.Error()
	} else if result != nil {
		output.Valid = result.Valid
		output.Errors = toJSONIssues(result.Errors)
		output.Warnings = toJSONIssues(result.Warnings)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output)
}

func outputValidationText(w io.Writer, result *validator.Result) {
	for _, is := range result.Errors {
		fmt.Fprintf(w, "%s %s %s\n",
			styleError.Render("✗ ["+string(is.Code)+"]"),
			is.Message,
			styleMuted.Render("("+is.Location.String()+")"))
	}
	for _, is := range result.Warnings {
		fmt.Fprintf(w, "%s %s %s\n",
			styleWarning.Render("! ["+string(is.Code)+"]"),
			is.Message,
			styleMuted.Render("("+is.Location.String()+")"))
	}

	switch {
	case result.Valid && len(result.Warnings) == 0:
		fmt.Fprintln(w, styleSuccess.Render("✓ Blueprint is valid"))
	case result.Valid:
		fmt.Fprintf(w, "%s\n", styleWarning.Render(
			fmt.Sprintf("✓ Blueprint is valid with %d warning(s)", len(result.Warnings))))
	default:
		fmt.Fprintf(w, "%s\n", styleError.Render(
			fmt.Sprintf("✗ Blueprint is invalid: %d error(s), %d warning(s)",
				len(result.Errors), len(result.Warnings))))
	}
}
