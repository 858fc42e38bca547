package heap

import "iter"

// Traversal is level order: the top first, then each level left to right.
// The cursor is a caller-owned rank counter; because the visit order is a
// pure function of rank, a cursor value saved at any point resumes the
// identical remaining sequence, provided the tree is not mutated in
// between. Mutation may reassign ranks arbitrarily.

// LevelFirst begins a level-order walk, setting the cursor to rank 1 and
// returning the top node, or nil on an empty heap.
func (r *Root) LevelFirst(cursor *uint64) *Node {
	if r.node == nil {
		return nil
	}
	*cursor = 1
	return r.node
}

// LevelNext advances the cursor and resolves the node at the new rank,
// returning nil once the cursor passes the live count. Each step is an
// independent O(log n) descent, so a walk may equally be continued from a
// snapshot of the cursor as from the previous call.
func (r *Root) LevelNext(cursor *uint64) *Node {
	*cursor++
	return r.Find(*cursor)
}

// All returns a level-order iterator over (rank, node). It is a
// convenience over LevelFirst/LevelNext for full walks:
//
//	for rank, node := range root.All() {
//		...
//	}
//
// The tree must not be mutated during the walk.
func (r *Root) All() iter.Seq2[uint64, *Node] {
	return func(yield func(uint64, *Node) bool) {
		var cursor uint64
		for node := r.LevelFirst(&cursor); node != nil; node = r.LevelNext(&cursor) {
			if !yield(cursor, node) {
				return
			}
		}
	}
}
