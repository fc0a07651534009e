package blueprint

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeBlueprintNotFound  = "BLUEPRINT_NOT_FOUND"
	ErrCodeBlueprintParse     = "BLUEPRINT_PARSE"
	ErrCodeCircularImport     = "CIRCULAR_IMPORT"
	ErrCodeEngineIncompatible = "ENGINE_INCOMPATIBLE"
)

// LoadError is a user-facing loader failure with actionable context.
type LoadError struct {
	Code       string // Error code for categorization
	Message    string // User-friendly error message
	Path       string // File the error was found in
	Suggestion string // Actionable suggestion to fix the error
	Underlying error  // Wrapped error for error chain
}

// Error returns the formatted error message.
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (at %s)", e.Message, e.Path)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain support.
func (e *LoadError) Unwrap() error {
	return e.Underlying
}

// Is supports errors.Is() for comparing error codes.
func (e *LoadError) Is(target error) bool {
	if t, ok := target.(*LoadError); ok {
		return e.Code == t.Code
	}
	return false
}

// NewBlueprintNotFoundError creates an error for a missing blueprint file.
func NewBlueprintNotFoundError(path string) *LoadError {
	return &LoadError{
		Code:       ErrCodeBlueprintNotFound,
		Message:    fmt.Sprintf("blueprint file not found: %s", path),
		Path:       path,
		Suggestion: "Check the blueprint path, or the producer import name it was derived from.",
	}
}

// NewBlueprintParseError creates an error for YAML parsing failures.
func NewBlueprintParseError(path string, err error) *LoadError {
	return &LoadError{
		Code:       ErrCodeBlueprintParse,
		Message:    "failed to parse blueprint file",
		Path:       path,
		Suggestion: "Check your YAML syntax. Common issues: incorrect indentation, missing colons, or unquoted special characters.",
		Underlying: err,
	}
}

// NewCircularImportError creates an error for circular producer imports.
func NewCircularImportError(chain []string) *LoadError {
	return &LoadError{
		Code:       ErrCodeCircularImport,
		Message:    fmt.Sprintf("circular producer import detected: %s", strings.Join(chain, " → ")),
		Suggestion: "Review your producer imports to break the circular dependency.",
	}
}

// NewEngineIncompatibleError creates an error for a blueprint requiring a
// newer engine than the one running.
func NewEngineIncompatibleError(path, requires, engine string) *LoadError {
	return &LoadError{
		Code:       ErrCodeEngineIncompatible,
		Message:    fmt.Sprintf("blueprint requires engine %s but this engine is %s", requires, engine),
		Path:       path,
		Suggestion: "Upgrade renku, or lower the blueprint's meta.requires constraint.",
	}
}

// IsLoadError checks if an error is a LoadError with a specific code.
func IsLoadError(err error, code string) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}
