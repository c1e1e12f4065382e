package markup

// Node is one element of a document tree, block or inline.
type Node interface {
	// Children returns the node's children in document order.
	Children() []Node
	// Accept dispatches to the Visitor method matching the node's kind.
	Accept(v Visitor)

	isNode()
}

// container carries the ordered children shared by every node kind.
type container struct {
	children []Node
}

func (c *container) Children() []Node { return c.children }

func (c *container) isNode() {}

func newContainer(children []Node) container {
	kept := make([]Node, 0, len(children))
	for _, child := range children {
		if child != nil {
			kept = append(kept, child)
		}
	}
	return container{children: kept}
}

// Walk visits node and its descendants depth first, parents before children.
// When fn returns false the children of that node are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children() {
		Walk(child, fn)
	}
}
