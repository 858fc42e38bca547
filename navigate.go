package heap

import "math/bits"

// slot resolves the parent and owning child link for rank in the complete
// tree, by reading the bits of rank below its leading 1, most significant
// first: 0 descends left, 1 descends right. For rank 1 the parent is nil
// and the link is the root slot. rank must be >= 1; ranks beyond count+1
// resolve to links under absent nodes and must not be requested.
//
// So for the tree below, rank 6 (binary 110) descends right then left,
// yielding parent 3 and the link &3.left, which holds node 6:
//
//	         1
//	       /   \
//	      2     3
//	     / \   / \
//	    4   5 6   7
//
// The walk costs one dereference per bit, O(log n) overall.
func (r *Root) slot(rank uint64) (parent *Node, link **Node) {
	link = &r.node
	for shift := bits.Len64(rank) - 2; shift >= 0; shift-- {
		parent = *link
		if rank&(1<<uint(shift)) != 0 {
			link = &parent.right
		} else {
			link = &parent.left
		}
	}
	return parent, link
}

// InsertSlot returns the parent and child link of the slot the next
// insertion must occupy to keep the tree complete, which is rank count+1.
// Callers that need to split slot discovery from linking (for example to
// batch comparator setup) pass the results on to InsertNode.
func (r *Root) InsertSlot() (parent *Node, link **Node) {
	return r.slot(r.count + 1)
}

// linkOf returns the child link that owns node: the slot in its parent,
// or the root slot for the top node.
func (r *Root) linkOf(node *Node) **Node {
	if node.parent == nil {
		return &r.node
	}
	if node.parent.left == node {
		return &node.parent.left
	}
	return &node.parent.right
}

// rankOf recovers the level-order rank of a linked node by walking its
// parent links to the top. Each left edge contributes a 0 bit and each
// right edge a 1, the edge nearest the node being least significant, and
// the top contributes the leading 1. This is the inverse of the descent in
// slot, and cheaper than a downward search for a node whose rank is
// unknown.
func rankOf(node *Node) uint64 {
	var path uint64
	var height uint
	for node.parent != nil {
		if node.parent.right == node {
			path |= 1 << height
		}
		height++
		node = node.parent
	}
	return path | 1<<height
}

// Rank returns the level-order rank of n, counting from 1 at the top, or 0
// when n is detached. The rank of a node is stable only while the tree is
// unmutated; any insert or delete may reassign ranks.
func (n *Node) Rank() uint64 {
	if n.state != stateLinked {
		return 0
	}
	return rankOf(n)
}
