package heap

// Find resolves the node at the given level-order rank directly through
// the slot navigation, without traversing. Rank 1 is the top. Returns nil
// for rank 0, for ranks beyond the live count, and on an empty heap.
// O(log n).
func (r *Root) Find(rank uint64) *Node {
	if rank == 0 || rank > r.count {
		return nil
	}
	_, link := r.slot(rank)
	return *link
}
