// Package validator proves a loaded blueprint tree is well-formed before
// an execution plan is built. It resolves references across namespaces,
// detects producer cycles, checks fan-out/fan-in dimension consistency,
// and classifies every problem as a stable, coded issue.
package validator

import (
	"fmt"
	"strings"
)

// Code categorizes a validation issue. The set is closed and stable:
// downstream tooling pattern-matches on these strings, so adding codes is
// additive-only and existing codes are never renumbered or repurposed.
type Code string

const (
	CodeProducerNotFound           Code = "PRODUCER_NOT_FOUND"
	CodeInputNotFound              Code = "INPUT_NOT_FOUND"
	CodeArtifactNotFound           Code = "ARTIFACT_NOT_FOUND"
	CodeInvalidNestedPath          Code = "INVALID_NESTED_PATH"
	CodeProducerInputMismatch      Code = "PRODUCER_INPUT_MISMATCH"
	CodeProducerOutputMismatch     Code = "PRODUCER_OUTPUT_MISMATCH"
	CodeLoopCountInputNotFound     Code = "LOOP_COUNTINPUT_NOT_FOUND"
	CodeArtifactCountInputNotFound Code = "ARTIFACT_COUNTINPUT_NOT_FOUND"
	CodeCollectorSourceInvalid     Code = "COLLECTOR_SOURCE_INVALID"
	CodeCollectorTargetInvalid     Code = "COLLECTOR_TARGET_INVALID"
	CodeCollectorMissingConnection Code = "COLLECTOR_MISSING_CONNECTION"
	CodeConditionPathInvalid       Code = "CONDITION_PATH_INVALID"
	CodeInvalidInputType           Code = "INVALID_INPUT_TYPE"
	CodeInvalidArtifactType        Code = "INVALID_ARTIFACT_TYPE"
	CodeInvalidItemType            Code = "INVALID_ITEM_TYPE"
	CodeUnusedInput                Code = "UNUSED_INPUT"
	CodeUnusedArtifact             Code = "UNUSED_ARTIFACT"
	CodeUnreachableProducer        Code = "UNREACHABLE_PRODUCER"
	CodeProducerCycle              Code = "PRODUCER_CYCLE"
	CodeDimensionMismatch          Code = "DIMENSION_MISMATCH"
)

// Severity classifies how serious an issue is.
type Severity string

const (
	// SeverityError marks structurally invalid blueprints: execution
	// would fail or produce wrong results.
	SeverityError Severity = "error"
	// SeverityWarning marks structurally valid but likely mistaken
	// declarations, such as unused inputs.
	SeverityWarning Severity = "warning"
)

// Location identifies where in the tree an issue was found.
type Location struct {
	// NamespacePath locates the document node, root-relative.
	NamespacePath []string
	// Field names the document section, e.g. "connections" or "loops".
	Field string
}

// String renders the location for human output.
func (l Location) String() string {
	ns := "(root)"
	if len(l.NamespacePath) > 0 {
		ns = strings.Join(l.NamespacePath, "/")
	}
	if l.Field != "" {
		return ns + ":" + l.Field
	}
	return ns
}

// Issue is one validation finding.
type Issue struct {
	Code     Code
	Message  string
	Severity Severity
	Location Location
}

// String renders the issue for human output.
func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s (%s)", i.Code, i.Message, i.Location)
}

// Result aggregates every finding from a tree validation.
type Result struct {
	// Valid is true iff no error-severity issues exist anywhere.
	Valid    bool
	Errors   []Issue
	Warnings []Issue
}

// issue builds a finding with severity derived from its code.
func issue(code Code, field string, format string, args ...any) Issue {
	sev := SeverityError
	switch code {
	case CodeUnusedInput, CodeUnusedArtifact, CodeUnreachableProducer:
		sev = SeverityWarning
	}
	return Issue{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
		Location: Location{Field: field},
	}
}
