package validator

import (
	"sort"
	"strings"

	"github.com/keremk/renku/internal/domain/blueprint"
)

// checkCycles detects dependency cycles between producer imports. Nodes
// are producer names; edges come from connections whose endpoints both
// resolve to producers, selectors stripped. Self-loops (a producer
// feeding its own input) are legal and never reported. Each distinct
// cycle is reported once regardless of where the traversal entered it.
func checkCycles(node *blueprint.TreeNode) []Issue {
	doc := node.Document

	adjacency := make(map[string][]string)
	for _, conn := range doc.Connections {
		from := ParseReference(conn.From)
		to := ParseReference(conn.To)
		if resolveBase(doc, from.Base) != kindProducer || resolveBase(doc, to.Base) != kindProducer {
			continue
		}
		if from.Base == to.Base {
			continue
		}
		adjacency[from.Base] = append(adjacency[from.Base], to.Base)
	}

	// Sorted start order keeps traversal deterministic; reported cycles
	// are independent of producer declaration order either way.
	names := make([]string, 0, len(doc.Producers))
	for _, p := range doc.Producers {
		names = append(names, p.Name)
	}
	sort.Strings(names)

	d := cycleDetector{
		adjacency: adjacency,
		state:     make(map[string]visitState),
		seen:      make(map[string]bool),
	}
	for _, name := range names {
		if d.state[name] == stateUnvisited {
			d.visit(name)
		}
	}

	issues := make([]Issue, 0, len(d.cycles))
	for _, cycle := range d.cycles {
		issues = append(issues, issue(CodeProducerCycle, "connections",
			"producer cycle detected: %s", strings.Join(cycle, " → ")))
	}
	return issues
}

type visitState int

const (
	stateUnvisited visitState = iota
	stateOnStack
	stateDone
)

type cycleDetector struct {
	adjacency map[string][]string
	state     map[string]visitState
	stack     []string
	seen      map[string]bool
	cycles    [][]string
}

func (d *cycleDetector) visit(name string) {
	d.state[name] = stateOnStack
	d.stack = append(d.stack, name)

	for _, next := range d.adjacency[name] {
		switch d.state[next] {
		case stateOnStack:
			d.record(next)
		case stateUnvisited:
			d.visit(next)
		}
	}

	d.stack = d.stack[:len(d.stack)-1]
	d.state[name] = stateDone
}

// record captures the cycle currently on the stack, starting at the
// revisited node, deduplicated by rotation-invariant key.
func (d *cycleDetector) record(start string) {
	idx := 0
	for i, name := range d.stack {
		if name == start {
			idx = i
			break
		}
	}
	cycle := append([]string{}, d.stack[idx:]...)

	cycle = rotateToSmallest(cycle)
	key := strings.Join(cycle, ",")
	if d.seen[key] {
		return
	}
	d.seen[key] = true

	// Close the loop for rendering: A → B → A.
	d.cycles = append(d.cycles, append(cycle, cycle[0]))
}

// rotateToSmallest rotates a cycle so its lexicographically smallest
// member comes first, making equal cycles compare equal.
func rotateToSmallest(cycle []string) []string {
	if len(cycle) == 0 {
		return cycle
	}
	smallest := 0
	for i, name := range cycle {
		if name < cycle[smallest] {
			smallest = i
		}
	}
	return append(append([]string{}, cycle[smallest:]...), cycle[:smallest]...)
}
