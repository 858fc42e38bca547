package heap

// Link attaches node as a fresh leaf at the slot identified by parent and
// link, without regard for order. link must be the slot returned by
// InsertSlot (or the root slot of an empty tree); anything else breaks the
// complete shape. The count and the links are updated together.
func (r *Root) Link(parent *Node, link **Node, node *Node) {
	if r.CheckLink != nil && !r.CheckLink(parent, link, node) {
		return
	}
	*link = node
	node.parent = parent
	node.left, node.right = nil, nil
	node.state = stateLinked
	r.count++
}

// InsertNode links node at the given slot and restores the order
// invariant.
func (r *Root) InsertNode(parent *Node, link **Node, node *Node, cmp CompareFunc) {
	r.Link(parent, link, node)
	r.Fixup(node, cmp)
}

// Insert places node at the next free slot, keeping the tree complete,
// then sifts it up until its parent orders no later than it. O(log n).
func (r *Root) Insert(node *Node, cmp CompareFunc) {
	parent, link := r.InsertSlot()
	r.InsertNode(parent, link, node, cmp)
}
