// Package blueprint defines the declarative document model for Renku
// generation pipelines and the loader that composes documents into a
// namespace tree.
package blueprint

import (
	"gopkg.in/yaml.v3"
)

// Meta holds document-level identity and compatibility information.
type Meta struct {
	ID          string `yaml:"id,omitempty"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	// Requires is the minimum engine version (semver) this blueprint needs.
	Requires string `yaml:"requires,omitempty"`
}

// Input declares a named value the blueprint consumes.
type Input struct {
	Name     string   `yaml:"name"`
	Type     DataType `yaml:"type"`
	Required bool     `yaml:"required,omitempty"`
	// ItemType is the element type when Type is array.
	ItemType DataType `yaml:"itemType,omitempty"`
	// CountInput names the input that determines how many items are expected.
	CountInput string `yaml:"countInput,omitempty"`
}

// Artifact declares a named output the blueprint produces.
type Artifact struct {
	Name       string   `yaml:"name"`
	Type       DataType `yaml:"type"`
	Required   bool     `yaml:"required,omitempty"`
	ItemType   DataType `yaml:"itemType,omitempty"`
	CountInput string   `yaml:"countInput,omitempty"`
}

// ProducerImport declares a sub-blueprint instance addressed by name.
type ProducerImport struct {
	Name string `yaml:"name"`
	// Source optionally overrides the file the producer is loaded from.
	Source string `yaml:"source,omitempty"`
}

// Connection is a directed data-flow edge between two endpoints.
// Endpoints use reference syntax such as "Producer[segment].Output".
type Connection struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	// Condition names an entry in Document.Conditions that gates this edge.
	Condition string `yaml:"condition,omitempty"`
}

// Loop declares a named repetition axis (a dimension).
type Loop struct {
	Name       string `yaml:"name"`
	CountInput string `yaml:"countInput"`
	// Parent names the enclosing loop for nested repetition.
	Parent string `yaml:"parent,omitempty"`
}

// Collector declares a fan-in aggregation from a dimensioned producer
// output into a lower-dimensioned consumer input.
type Collector struct {
	Name    string `yaml:"name"`
	From    string `yaml:"from"`
	Into    string `yaml:"into"`
	GroupBy string `yaml:"groupBy,omitempty"`
	OrderBy string `yaml:"orderBy,omitempty"`
}

// Document is one blueprint node's declared contents.
type Document struct {
	Meta        Meta                 `yaml:"meta,omitempty"`
	Inputs      []Input              `yaml:"inputs,omitempty"`
	Artifacts   []Artifact           `yaml:"artifacts,omitempty"`
	Producers   []ProducerImport     `yaml:"producers,omitempty"`
	Connections []Connection         `yaml:"connections,omitempty"`
	Loops       []Loop               `yaml:"loops,omitempty"`
	Collectors  []Collector          `yaml:"collectors,omitempty"`
	Conditions  map[string]Condition `yaml:"conditions,omitempty"`
}

// ParseDocument parses a Document from YAML bytes.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Input returns the declared input with the given name.
func (d *Document) Input(name string) (Input, bool) {
	for _, in := range d.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return Input{}, false
}

// Artifact returns the declared artifact with the given name.
func (d *Document) Artifact(name string) (Artifact, bool) {
	for _, a := range d.Artifacts {
		if a.Name == name {
			return a, true
		}
	}
	return Artifact{}, false
}

// Producer returns the declared producer import with the given name.
func (d *Document) Producer(name string) (ProducerImport, bool) {
	for _, p := range d.Producers {
		if p.Name == name {
			return p, true
		}
	}
	return ProducerImport{}, false
}

// Loop returns the declared loop with the given name.
func (d *Document) Loop(name string) (Loop, bool) {
	for _, l := range d.Loops {
		if l.Name == name {
			return l, true
		}
	}
	return Loop{}, false
}
