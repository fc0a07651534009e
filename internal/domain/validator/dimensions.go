package validator

import "github.com/keremk/renku/internal/domain/blueprint"

// checkDimensions verifies fan-out/fan-in consistency on every
// producer-to-producer connection. Connections touching inputs or
// artifacts are exempt. A connection whose endpoints carry different
// numbers of named dimensions is dimension-reducing and must be covered
// by a collector matching both of its endpoints; each source producer
// feeding a reduced target needs its own collector. Equal dimension
// counts are always legal, even across renamed dimensions.
func checkDimensions(node *blueprint.TreeNode) []Issue {
	doc := node.Document
	var issues []Issue

	for _, conn := range doc.Connections {
		from := ParseReference(conn.From)
		to := ParseReference(conn.To)
		if resolveBase(doc, from.Base) != kindProducer || resolveBase(doc, to.Base) != kindProducer {
			continue
		}

		delta := len(from.Dimensions) - len(to.Dimensions)
		if delta == 0 {
			continue
		}
		if hasCoveringCollector(doc, from, to) {
			continue
		}

		if delta > 0 {
			issues = append(issues, issue(CodeDimensionMismatch, "connections",
				"connection from %q loses %d dimension(s) into %q without a matching collector",
				from.Base, delta, to.Base))
		} else {
			issues = append(issues, issue(CodeDimensionMismatch, "connections",
				"connection from %q gains %d dimension(s) into %q without a matching collector",
				from.Base, -delta, to.Base))
		}
	}

	return issues
}

// hasCoveringCollector reports whether a collector matches both ends of
// the connection: same base, same field path, and the same set of named
// dimension tokens on each side.
func hasCoveringCollector(doc *blueprint.Document, from, to Reference) bool {
	for _, col := range doc.Collectors {
		cf := ParseReference(col.From)
		ct := ParseReference(col.Into)
		if samePath(cf, from) && sameDimensions(cf, from) &&
			samePath(ct, to) && sameDimensions(ct, to) {
			return true
		}
	}
	return false
}
