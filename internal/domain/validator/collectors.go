package validator

import "github.com/keremk/renku/internal/domain/blueprint"

// checkCollectors verifies collector declarations: both ends must name
// declared producer imports, and every collector must be backed by at
// least one connection along the same base path. Backing connections are
// matched ignoring the specific dimension-selector tokens used, so
// "A[segment][image].Frames" backs a collector on "A[0][image].Frames".
func checkCollectors(node *blueprint.TreeNode) []Issue {
	doc := node.Document
	var issues []Issue

	for _, col := range doc.Collectors {
		from := ParseReference(col.From)
		into := ParseReference(col.Into)

		fromValid := resolveBase(doc, from.Base) == kindProducer
		if !fromValid {
			issues = append(issues, issue(CodeCollectorSourceInvalid, "collectors",
				"collector %q source %q is not a declared producer", col.Name, from.Base))
		}
		intoValid := resolveBase(doc, into.Base) == kindProducer
		if !intoValid {
			issues = append(issues, issue(CodeCollectorTargetInvalid, "collectors",
				"collector %q target %q is not a declared producer", col.Name, into.Base))
		}
		if !fromValid || !intoValid {
			continue
		}

		if !hasBackingConnection(doc, from, into) {
			issues = append(issues, issue(CodeCollectorMissingConnection, "collectors",
				"collector %q has no backing connection from %q to %q", col.Name, col.From, col.Into))
		}
	}

	return issues
}

// hasBackingConnection reports whether some connection follows the same
// base paths as the collector, selectors ignored.
func hasBackingConnection(doc *blueprint.Document, from, into Reference) bool {
	for _, conn := range doc.Connections {
		cf := ParseReference(conn.From)
		ct := ParseReference(conn.To)
		if samePath(cf, from) && samePath(ct, into) {
			return true
		}
	}
	return false
}

// samePath compares base identifier and field path, ignoring selectors.
func samePath(a, b Reference) bool {
	return a.Base == b.Base && a.Field == b.Field
}
