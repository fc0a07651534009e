package validator

import "github.com/keremk/renku/internal/domain/blueprint"

// checkCountInputs verifies that every loop and artifact countInput
// resolves to a declared input or a system input.
func checkCountInputs(node *blueprint.TreeNode) []Issue {
	doc := node.Document
	var issues []Issue

	for _, loop := range doc.Loops {
		if loop.CountInput == "" || resolvesAsCount(doc, loop.CountInput) {
			continue
		}
		issues = append(issues, issue(CodeLoopCountInputNotFound, "loops",
			"loop %q count input %q is not a declared input", loop.Name, loop.CountInput))
	}

	for _, art := range doc.Artifacts {
		if art.CountInput == "" || resolvesAsCount(doc, art.CountInput) {
			continue
		}
		issues = append(issues, issue(CodeArtifactCountInputNotFound, "artifacts",
			"artifact %q count input %q is not a declared input", art.Name, art.CountInput))
	}

	return issues
}

// checkTypes verifies every declared type against the closed type sets.
func checkTypes(node *blueprint.TreeNode) []Issue {
	doc := node.Document
	var issues []Issue

	for _, in := range doc.Inputs {
		if !in.Type.IsValid() {
			issues = append(issues, issue(CodeInvalidInputType, "inputs",
				"input %q has invalid type %q", in.Name, string(in.Type)))
		}
	}

	for _, art := range doc.Artifacts {
		if !art.Type.IsValid() {
			issues = append(issues, issue(CodeInvalidArtifactType, "artifacts",
				"artifact %q has invalid type %q", art.Name, string(art.Type)))
		}
		if art.Type == blueprint.TypeArray && art.ItemType != "" && !art.ItemType.IsValidItemType() {
			issues = append(issues, issue(CodeInvalidItemType, "artifacts",
				"artifact %q has invalid item type %q", art.Name, string(art.ItemType)))
		}
	}

	return issues
}

// checkUnusedResources warns about inputs nothing reads and artifacts
// nothing writes. An input counts as used when a connection reads it or
// when a loop or artifact uses it as a countInput.
func checkUnusedResources(node *blueprint.TreeNode) []Issue {
	doc := node.Document

	usedInputs := make(map[string]bool)
	writtenArtifacts := make(map[string]bool)
	for _, conn := range doc.Connections {
		usedInputs[ParseReference(conn.From).Base] = true
		writtenArtifacts[ParseReference(conn.To).Base] = true
	}
	for _, loop := range doc.Loops {
		usedInputs[loop.CountInput] = true
	}
	for _, art := range doc.Artifacts {
		usedInputs[art.CountInput] = true
	}

	var issues []Issue
	for _, in := range doc.Inputs {
		if !usedInputs[in.Name] {
			issues = append(issues, issue(CodeUnusedInput, "inputs",
				"input %q is never used", in.Name))
		}
	}
	for _, art := range doc.Artifacts {
		if !writtenArtifacts[art.Name] {
			issues = append(issues, issue(CodeUnusedArtifact, "artifacts",
				"artifact %q is never written", art.Name))
		}
	}
	return issues
}

// checkUnreachableProducers warns about producer imports no connection
// targets. Dimension selectors are ignored: "A[segment].In" reaches "A".
func checkUnreachableProducers(node *blueprint.TreeNode) []Issue {
	doc := node.Document

	targeted := make(map[string]bool)
	for _, conn := range doc.Connections {
		targeted[ParseReference(conn.To).Base] = true
	}

	var issues []Issue
	for _, p := range doc.Producers {
		if !targeted[p.Name] {
			issues = append(issues, issue(CodeUnreachableProducer, "producers",
				"producer %q is never targeted by a connection", p.Name))
		}
	}
	return issues
}
