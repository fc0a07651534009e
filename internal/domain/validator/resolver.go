package validator

import "github.com/keremk/renku/internal/domain/blueprint"

// endpointKind classifies what a reference base resolves to within one
// document.
type endpointKind int

const (
	kindUnknown endpointKind = iota
	kindInput
	kindArtifact
	kindProducer
	kindSystemInput
)

// resolveBase classifies a base identifier against a document's declared
// inputs, artifacts and producer imports, plus the closed set of
// host-supplied system inputs. Producers win over same-named declarations
// because only producers carry field paths.
func resolveBase(doc *blueprint.Document, base string) endpointKind {
	if _, ok := doc.Producer(base); ok {
		return kindProducer
	}
	if _, ok := doc.Input(base); ok {
		return kindInput
	}
	if _, ok := doc.Artifact(base); ok {
		return kindArtifact
	}
	if blueprint.IsSystemInput(base) {
		return kindSystemInput
	}
	return kindUnknown
}

// resolvesAsValue reports whether a base resolves to anything that can
// carry data: a declared input, artifact, producer, or system input.
func resolvesAsValue(doc *blueprint.Document, base string) bool {
	return resolveBase(doc, base) != kindUnknown
}

// resolvesAsCount reports whether a countInput reference resolves to a
// declared input or a system input.
func resolvesAsCount(doc *blueprint.Document, name string) bool {
	switch resolveBase(doc, name) {
	case kindInput, kindSystemInput:
		return true
	default:
		return false
	}
}
