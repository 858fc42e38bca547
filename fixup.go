package heap

// swapWithParent exchanges node with its parent, updating the three
// neighbouring link sets: the grandparent's (or root's) child link, the
// mutual parent/child links of the exchanged pair, and the parent links of
// the displaced subtrees. The pair trade places wholesale, so the complete
// shape of the tree is untouched.
func (r *Root) swapWithParent(node *Node) {
	parent := node.parent

	*r.linkOf(parent) = node
	node.parent = parent.parent

	left, right := node.left, node.right

	// parent drops into node's old slot; node adopts parent's other child.
	if parent.left == node {
		node.left = parent
		node.right = parent.right
		if node.right != nil {
			node.right.parent = node
		}
	} else {
		node.right = parent
		node.left = parent.left
		if node.left != nil {
			node.left.parent = node
		}
	}
	parent.parent = node

	parent.left, parent.right = left, right
	if left != nil {
		left.parent = parent
	}
	if right != nil {
		right.parent = parent
	}
}

// Fixup sifts node toward the top while it orders strictly before its
// parent, restoring the order invariant after the node's effective key
// decreased or after it was linked at a fresh leaf slot. A node that
// orders equal to its parent does not move.
func (r *Root) Fixup(node *Node, cmp CompareFunc) {
	if node.state != stateLinked {
		return
	}
	for node.parent != nil && cmp(node, node.parent) < 0 {
		r.swapWithParent(node)
	}
}
