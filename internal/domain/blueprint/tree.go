package blueprint

// TreeNode is one position in the composed blueprint tree. Children are
// owned exclusively by their parent; the tree carries no back-references.
type TreeNode struct {
	// ID identifies the node (meta.id, or generated at load time).
	ID string
	// NamespacePath is the ordered list of producer names from the root
	// to this node. Empty at the root.
	NamespacePath []string
	// Document is the node's declared contents.
	Document *Document
	// Children maps a producer-import name to its sub-blueprint node.
	// Producer imports without a discoverable sub-blueprint (native
	// producers) have no entry here.
	Children map[string]*TreeNode
	// SourcePath is the origin file, for diagnostics only.
	SourcePath string
}

// Child returns the sub-blueprint node for a producer import, if any.
func (n *TreeNode) Child(producer string) (*TreeNode, bool) {
	child, ok := n.Children[producer]
	return child, ok
}

// Walk visits n and every descendant pre-order, children in the order
// their producer imports are declared.
func (n *TreeNode) Walk(visit func(*TreeNode)) {
	visit(n)
	for _, p := range n.Document.Producers {
		if child, ok := n.Children[p.Name]; ok {
			child.Walk(visit)
		}
	}
}
