package blueprint

import "gopkg.in/yaml.v3"

// Scalar is a YAML scalar captured as its literal text, so condition
// comparisons against booleans and numbers decode without quoting.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	*s = Scalar(value.Value)
	return nil
}

// Condition is a conditional expression tree. A condition is either a
// leaf comparison (When/Is) or a group (Any/All) of sub-conditions.
type Condition struct {
	// When is the reference path whose value is compared, e.g.
	// "Transcript.Language". Leaf form only.
	When string `yaml:"when,omitempty"`
	// Is is the value the When path must equal. Leaf form only.
	Is Scalar `yaml:"is,omitempty"`
	// Any is satisfied when at least one sub-condition is satisfied.
	Any []Condition `yaml:"any,omitempty"`
	// All is satisfied when every sub-condition is satisfied.
	All []Condition `yaml:"all,omitempty"`
}

// IsLeaf reports whether the condition is a leaf comparison.
func (c Condition) IsLeaf() bool {
	return c.When != "" && len(c.Any) == 0 && len(c.All) == 0
}

// IsGroup reports whether the condition is an any/all group.
func (c Condition) IsGroup() bool {
	return len(c.Any) > 0 || len(c.All) > 0
}

// Children returns the sub-conditions of a group, or nil for a leaf.
func (c Condition) Children() []Condition {
	if len(c.Any) > 0 {
		return c.Any
	}
	return c.All
}

// Leaves returns every leaf comparison in the tree, depth first.
func (c Condition) Leaves() []Condition {
	if c.IsLeaf() {
		return []Condition{c}
	}
	var leaves []Condition
	for _, sub := range c.Any {
		leaves = append(leaves, sub.Leaves()...)
	}
	for _, sub := range c.All {
		leaves = append(leaves, sub.Leaves()...)
	}
	return leaves
}
