package heap

// Erase sifts node toward the leaves while a child orders strictly before
// it, descending into the smaller child each round. The tree is complete,
// so a right child exists only when the left does. Equal children need no
// swap, and when both children order before node the strictly smaller one
// wins; a tie between the two descends left.
func (r *Root) Erase(node *Node, cmp CompareFunc) {
	if node.state != stateLinked {
		return
	}
	for {
		child := node.left
		if child == nil {
			return
		}
		if node.right != nil && cmp(node.right, child) < 0 {
			child = node.right
		}
		if cmp(child, node) >= 0 {
			return
		}
		r.swapWithParent(child)
	}
}
