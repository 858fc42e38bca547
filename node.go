package heap

// CompareFunc orders two linked nodes. It returns a negative value when a
// orders before b, zero when they are equal, and a positive value otherwise.
// It is only ever called with nodes that are currently linked in the tree,
// and must be consistent across calls while the surrounding payloads are
// unchanged. A total order is not required.
type CompareFunc func(a, b *Node) int

// linkState tags a Node with its lifecycle position so that stale handles
// are distinguishable: a zero valued Node has never been linked, a removed
// Node has been through Delete or Remove. Only linked nodes participate in
// comparisons or rebalancing.
type linkState uint8

const (
	stateNew linkState = iota
	stateLinked
	stateRemoved
)

// Node is the linkage record embedded in caller structures. The zero value
// is ready to insert. A Node must belong to at most one Root at a time.
//
// parent is a back reference used only for upward navigation; left and
// right own the subtrees. None of the fields are touched between a Delete
// and a reinsert, except to reset them to the detached state.
type Node struct {
	parent *Node
	left   *Node
	right  *Node
	state  linkState
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

// Parent returns the parent node, or nil for the top of the tree and for
// detached nodes.
func (n *Node) Parent() *Node {
	if n.state != stateLinked {
		return nil
	}
	return n.parent
}

// Detached reports whether n is not currently linked in any tree. Both a
// never inserted zero value and a deleted node are detached.
func (n *Node) Detached() bool { return n.state != stateLinked }

// clear resets n to the detached state. Removed rather than New so that a
// use after delete remains distinguishable from a fresh node.
func (n *Node) clear() {
	n.parent, n.left, n.right = nil, nil, nil
	n.state = stateRemoved
}

// Root anchors one heap: the top node and the authoritative count of live
// nodes. The count is what drives slot navigation, so every mutation keeps
// it exactly in step with the links. The zero value is an empty heap.
//
// A Root is not synchronized; the owner serializes all access.
type Root struct {
	node  *Node
	count uint64

	// CheckLink and CheckDelete are optional development-time hooks,
	// consulted before a node is linked or deleted. Returning false
	// aborts the mutation silently. Leave nil in production use.
	CheckLink   func(parent *Node, link **Node, node *Node) bool
	CheckDelete func(node *Node) bool
}

// Empty reports whether the heap holds no nodes.
func (r *Root) Empty() bool { return r.node == nil }

// Count returns the number of linked nodes.
func (r *Root) Count() uint64 { return r.count }

// Top returns the node at rank 1, the minimum under the insertion
// comparator, or nil when the heap is empty.
func (r *Root) Top() *Node { return r.node }
