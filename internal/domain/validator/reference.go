package validator

import (
	"regexp"
	"strings"
)

// Reference is a parsed connection endpoint such as
// "Producer[segment][image].Output".
type Reference struct {
	// Base is the identifier before any selector or field path.
	Base string
	// Selectors holds every bracket token in order, as written.
	Selectors []string
	// Dimensions holds the bracket tokens that name loop dimensions.
	// Numeric literals and arithmetic offsets select a specific slice
	// instead of fanning out, so they are excluded here.
	Dimensions []string
	// Field is the path after the base and selectors, e.g. "Output" or
	// "Output.url". Empty when the reference is a bare identifier.
	Field string
}

var (
	identPattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	numericPattern = regexp.MustCompile(`^-?[0-9]+$`)
	offsetPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*[+-][0-9]+$`)
)

// ParseReference parses a raw endpoint string. Malformed input degrades
// gracefully: the unparseable remainder is kept as base or field text and
// Dimensions stays empty, so every string yields a usable Reference.
func ParseReference(raw string) Reference {
	ref := Reference{Base: raw}

	rest := raw
	if idx := strings.IndexAny(rest, "[."); idx >= 0 {
		ref.Base = rest[:idx]
		rest = rest[idx:]
	} else {
		return ref
	}

	for strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			// Unterminated selector; stop parsing here.
			return ref
		}
		token := rest[1:end]
		ref.Selectors = append(ref.Selectors, token)
		if identPattern.MatchString(token) {
			ref.Dimensions = append(ref.Dimensions, token)
		}
		rest = rest[end+1:]
	}

	ref.Field = strings.TrimPrefix(rest, ".")
	return ref
}

// FieldBase returns the first segment of the field path, which names the
// producer input or output the reference targets.
func (r Reference) FieldBase() string {
	if idx := strings.Index(r.Field, "."); idx >= 0 {
		return r.Field[:idx]
	}
	return r.Field
}

// SelectsSlice reports whether token is a numeric literal or arithmetic
// offset selector rather than a named dimension.
func SelectsSlice(token string) bool {
	return numericPattern.MatchString(token) || offsetPattern.MatchString(token)
}

// sameDimensions reports whether two references use the same multiset of
// named dimension tokens, order ignored.
func sameDimensions(a, b Reference) bool {
	if len(a.Dimensions) != len(b.Dimensions) {
		return false
	}
	counts := make(map[string]int, len(a.Dimensions))
	for _, d := range a.Dimensions {
		counts[d]++
	}
	for _, d := range b.Dimensions {
		counts[d]--
		if counts[d] < 0 {
			return false
		}
	}
	return true
}
