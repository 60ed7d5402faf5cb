package dom

// Location is a read-only cursor identifying one node within a specific
// tree, with enough ancestor context to move to relatives and to rebuild
// the spine after an edit. Locations are cheap value objects; create as
// many as needed over the same tree.
type Location struct {
	node   *Node
	parent *Location
	index  int // position within parent's children
}

// Root returns the location of the tree's root node.
func Root(n *Node) *Location {
	return &Location{node: n}
}

// Node returns the node this location points at.
func (l *Location) Node() *Node {
	return l.node
}

// Down moves to the first child. The second return is false when the node
// has no children; leaf kinds always report false.
func (l *Location) Down() (*Location, bool) {
	if len(l.node.Children) == 0 {
		return nil, false
	}
	return &Location{node: l.node.Children[0], parent: l, index: 0}, true
}

// Sibling moves to the next sibling. False at the last child or at the root.
func (l *Location) Sibling() (*Location, bool) {
	if l.parent == nil {
		return nil, false
	}
	next := l.index + 1
	if next >= len(l.parent.node.Children) {
		return nil, false
	}
	return &Location{node: l.parent.node.Children[next], parent: l.parent, index: next}, true
}

// Up moves to the parent. False at the root.
func (l *Location) Up() (*Location, bool) {
	if l.parent == nil {
		return nil, false
	}
	return l.parent, true
}

// Next moves to the next location in document order: first child if any,
// else next sibling, else the next sibling of the nearest ancestor that
// has one. False means the end of the tree — a normal terminal state.
func (l *Location) Next() (*Location, bool) {
	if d, ok := l.Down(); ok {
		return d, true
	}
	for loc := l; loc != nil; loc = loc.parent {
		if s, ok := loc.Sibling(); ok {
			return s, true
		}
	}
	return nil, false
}

// Replace returns a new root tree with n substituted at this location.
// Only the ancestor spine is reconstructed; every untouched sibling and
// subtree is shared by reference with the original tree. Used by traversal
// bookkeeping; the source tree itself is never mutated.
func (l *Location) Replace(n *Node) *Node {
	cur := n
	for loc := l; loc.parent != nil; loc = loc.parent {
		p := loc.parent.node
		kids := make([]*Node, len(p.Children))
		copy(kids, p.Children)
		kids[loc.index] = cur
		np := *p
		np.Children = kids
		cur = &np
	}
	return cur
}
