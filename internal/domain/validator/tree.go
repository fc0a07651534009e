package validator

import "github.com/keremk/renku/internal/domain/blueprint"

// Options configures a tree validation.
type Options struct {
	// ErrorsOnly discards warnings from the result.
	ErrorsOnly bool
}

// checkFunc is a stateless validator over one document node. Checks that
// need sibling data (producer I/O contracts) read the node's immediate
// children; nothing looks further than that.
type checkFunc func(*blueprint.TreeNode) []Issue

// documentChecks is the ordered registry of per-document and graph
// checks the orchestrator runs at every node.
var documentChecks = []checkFunc{
	checkConnections,
	checkContracts,
	checkCountInputs,
	checkCollectors,
	checkConditions,
	checkTypes,
	checkCycles,
	checkDimensions,
	checkUnusedResources,
	checkUnreachableProducers,
}

// ValidateTree validates every node of a blueprint tree pre-order, root
// first, children in declared producer order. Every issue is tagged with
// the namespace path of the node it was found at, and all findings are
// aggregated into one flat result; validation never stops at the first
// problem. Callers must not assume any ordering of Errors or Warnings.
//
// The tree is never mutated. A nil root is a caller contract violation
// and panics.
func ValidateTree(root *blueprint.TreeNode, opts Options) Result {
	if root == nil {
		panic("validator: nil blueprint tree")
	}

	result := Result{}
	root.Walk(func(node *blueprint.TreeNode) {
		for _, check := range documentChecks {
			for _, found := range check(node) {
				found.Location.NamespacePath = append([]string{}, node.NamespacePath...)
				switch found.Severity {
				case SeverityWarning:
					if !opts.ErrorsOnly {
						result.Warnings = append(result.Warnings, found)
					}
				default:
					result.Errors = append(result.Errors, found)
				}
			}
		}
	})

	result.Valid = len(result.Errors) == 0
	return result
}
