package heap

// Remove detaches node from the tree while keeping it complete: the
// last-in-level-order node (rank count) is unlinked from its leaf slot and
// grafted into node's place, adopting node's surviving links. The count
// and the links move together.
//
// The promoted node is returned when it may now violate the order
// invariant against its new neighbours; nil is returned when node was
// itself the last slot, in which case order is undisturbed. The caller
// must rebalance a returned node - in either direction, since the
// promoted value can order before its new parent or after its new
// children - which is what Delete does.
//
// Passing a node that is not linked under r is a caller contract
// violation and corrupts the tree; the CheckDelete hook exists to catch
// this during development.
func (r *Root) Remove(node *Node) *Node {
	_, lastlink := r.slot(r.count)
	last := *lastlink

	*lastlink = nil
	r.count--
	if last == node {
		node.clear()
		return nil
	}

	// Graft last into node's slot. If node was last's parent, the child
	// link between them was already cleared above.
	*r.linkOf(node) = last
	last.parent = node.parent
	last.left, last.right = node.left, node.right
	if last.left != nil {
		last.left.parent = last
	}
	if last.right != nil {
		last.right.parent = last
	}

	node.clear()
	return last
}

// Delete removes node and restores heap order. The node promoted into the
// vacated slot is sifted up and then down; at most one direction actually
// moves it. Afterwards node's links are reset and it is marked removed, so
// a double delete or a stale handle is detectable through Detached and the
// debug hooks.
func (r *Root) Delete(node *Node, cmp CompareFunc) {
	if r.CheckDelete != nil && !r.CheckDelete(node) {
		return
	}
	if rebalance := r.Remove(node); rebalance != nil {
		r.Fixup(rebalance, cmp)
		r.Erase(rebalance, cmp)
	}
}
