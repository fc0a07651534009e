package validator

import "github.com/keremk/renku/internal/domain/blueprint"

// checkConditions walks every condition expression tree and verifies
// that each leaf's when-path resolves like a connection endpoint. One
// issue is reported per invalid leaf, however deeply nested.
func checkConditions(node *blueprint.TreeNode) []Issue {
	doc := node.Document
	var issues []Issue

	for name, cond := range doc.Conditions {
		for _, leaf := range cond.Leaves() {
			ref := ParseReference(leaf.When)
			if resolvesAsValue(doc, ref.Base) {
				continue
			}
			issues = append(issues, issue(CodeConditionPathInvalid, "conditions",
				"condition %q references unknown path %q", name, leaf.When))
		}
	}

	return issues
}
