package validator_test

import (
	"github.com/keremk/renku/internal/domain/blueprint"
	"github.com/keremk/renku/internal/domain/validator"
)

// node wraps a document in a childless tree node rooted at the top.
func node(doc *blueprint.Document) *blueprint.TreeNode {
	return &blueprint.TreeNode{
		ID:       "test",
		Document: doc,
		Children: map[string]*blueprint.TreeNode{},
	}
}

// validate runs the full tree validation over a single node.
func validate(doc *blueprint.Document) validator.Result {
	return validator.ValidateTree(node(doc), validator.Options{})
}

// byCode filters issues with the given code.
func byCode(issues []validator.Issue, code validator.Code) []validator.Issue {
	var matched []validator.Issue
	for _, is := range issues {
		if is.Code == code {
			matched = append(matched, is)
		}
	}
	return matched
}

// allIssues concatenates errors and warnings.
func allIssues(r validator.Result) []validator.Issue {
	return append(append([]validator.Issue{}, r.Errors...), r.Warnings...)
}
