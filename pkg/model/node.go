// Package model defines the intermediate tree representation shared by the
// DeciMaL parser and all diagram backends.
//
// A parsed model is a strict containment tree of [Node] values under a single
// synthetic root. Containment is the only relationship: there are no
// cross-links, no shared ownership, and no cycles. The tree is built once by
// the parser and is read-only afterwards, so renderers may traverse it
// concurrently without locking.
package model

// Kinds with dedicated rendering rules. Kind is an open set: any type name
// appearing after ":" in a part declaration becomes that node's kind, and
// kinds outside this list are rendered generically as leaves.
const (
	// KindRoot marks the synthetic, unnamed tree root. It is never rendered;
	// backends iterate its parts.
	KindRoot = "Root"

	KindPackage          = "Package"
	KindLogicalComponent = "LogicalComponent"
	KindLogicalFunction  = "LogicalFunction"
	KindLogicalActor     = "LogicalActor"
)

// Node is a single model element: a package, an actor, or a typed part.
type Node struct {
	// Kind is the element kind, one of the Kind* constants or an arbitrary
	// part type name.
	Kind string

	// Name is the display name. It may contain spaces and is always kept
	// separate from renderer identifiers.
	Name string

	// Alias is an optional short identifier used by some notations in place
	// of Name.
	Alias string

	// Description is optional free text attached via a description line
	// inside the node's scope. At most one; later lines overwrite.
	Description string

	// Parts holds the children in declaration order. Order is semantically
	// meaningful and must be preserved by every consumer.
	Parts []*Node
}

// NewRoot returns the synthetic root node of an empty model tree.
func NewRoot() *Node {
	return &Node{Kind: KindRoot}
}

// IsRoot reports whether n is the synthetic root.
func (n *Node) IsRoot() bool {
	return n.Kind == KindRoot
}

// IsContainer reports whether a node of the given kind may own children.
// Only packages and the three special logical kinds open a scope; every
// other typed part is a leaf.
func IsContainer(kind string) bool {
	switch kind {
	case KindPackage, KindLogicalComponent, KindLogicalFunction, KindLogicalActor:
		return true
	}
	return false
}

// Add appends child to n's parts, preserving insertion order.
func (n *Node) Add(child *Node) {
	n.Parts = append(n.Parts, child)
}

// Count returns the number of nodes in the tree rooted at n, excluding the
// synthetic root itself.
func (n *Node) Count() int {
	total := 0
	if !n.IsRoot() {
		total = 1
	}
	for _, p := range n.Parts {
		total += p.Count()
	}
	return total
}

// Depth returns the maximum nesting depth below n. A root with only leaf
// children has depth 1.
func (n *Node) Depth() int {
	max := 0
	for _, p := range n.Parts {
		if d := p.Depth(); d > max {
			max = d
		}
	}
	if n.IsRoot() {
		return max
	}
	return max + 1
}

// Walk visits every node under n in declaration order, depth first. The
// synthetic root is skipped; its children are visited at depth 0.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	depth := 0
	start := n.Parts
	if !n.IsRoot() {
		start = []*Node{n}
	}
	var visit func(nodes []*Node, depth int)
	visit = func(nodes []*Node, depth int) {
		for _, nd := range nodes {
			fn(nd, depth)
			visit(nd.Parts, depth+1)
		}
	}
	visit(start, depth)
}
