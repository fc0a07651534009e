package validator

import "github.com/keremk/renku/internal/domain/blueprint"

// checkConnections resolves both endpoints of every connection and
// verifies that producer references only select along declared loops.
func checkConnections(node *blueprint.TreeNode) []Issue {
	doc := node.Document
	var issues []Issue

	for _, conn := range doc.Connections {
		issues = append(issues, checkEndpoint(doc, conn.From, true)...)
		issues = append(issues, checkEndpoint(doc, conn.To, false)...)
	}

	return issues
}

// checkEndpoint validates one side of a connection. fromSide selects the
// code used for unresolvable bare identifiers: sources are searched in
// the input lists, targets in the artifact lists.
func checkEndpoint(doc *blueprint.Document, raw string, fromSide bool) []Issue {
	ref := ParseReference(raw)
	kind := resolveBase(doc, ref.Base)

	if kind == kindUnknown {
		switch {
		case ref.Field != "":
			return []Issue{issue(CodeProducerNotFound, "connections",
				"connection endpoint %q references unknown producer %q", raw, ref.Base)}
		case fromSide:
			return []Issue{issue(CodeInputNotFound, "connections",
				"connection reads undeclared input %q", ref.Base)}
		default:
			return []Issue{issue(CodeArtifactNotFound, "connections",
				"connection writes undeclared artifact %q", ref.Base)}
		}
	}

	if kind != kindProducer {
		return nil
	}

	// Every selector on a producer reference must either pick a specific
	// slice (numeric or offset) or name a loop declared in this document.
	var issues []Issue
	for _, token := range ref.Selectors {
		if SelectsSlice(token) {
			continue
		}
		if _, ok := doc.Loop(token); ok {
			continue
		}
		issues = append(issues, issue(CodeInvalidNestedPath, "connections",
			"dimension %q in %q does not name a declared loop", token, raw))
	}
	return issues
}

// checkContracts verifies producer input/output contracts: a connection
// into "Producer.X" must target a declared input of the producer's
// sub-document, and a connection from "Producer.Y" must read a declared
// artifact of it. Producers without a resolved sub-blueprint (native
// producers) are not checked.
func checkContracts(node *blueprint.TreeNode) []Issue {
	doc := node.Document
	var issues []Issue

	for _, conn := range doc.Connections {
		from := ParseReference(conn.From)
		if child, ok := producerChild(node, from); ok && from.Field != "" {
			if _, declared := child.Document.Artifact(from.FieldBase()); !declared {
				issues = append(issues, issue(CodeProducerOutputMismatch, "connections",
					"producer %q has no output %q", from.Base, from.FieldBase()))
			}
		}

		to := ParseReference(conn.To)
		if child, ok := producerChild(node, to); ok && to.Field != "" {
			if _, declared := child.Document.Input(to.FieldBase()); !declared {
				issues = append(issues, issue(CodeProducerInputMismatch, "connections",
					"producer %q has no input %q", to.Base, to.FieldBase()))
			}
		}
	}

	return issues
}

// producerChild returns the sub-blueprint node a reference resolves to,
// when its base is a declared producer import with a loaded child.
func producerChild(node *blueprint.TreeNode, ref Reference) (*blueprint.TreeNode, bool) {
	if resolveBase(node.Document, ref.Base) != kindProducer {
		return nil, false
	}
	return node.Child(ref.Base)
}
