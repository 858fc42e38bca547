/*
Package heap implements an intrusive, pointer-linked binary min heap.

# Intrusive linkage

The heap stores no keys and allocates nothing. Callers embed a [Node] in
their own record and supply a [CompareFunc] that orders two nodes by
whatever payload surrounds them; an [Accessor] recovers the embedding
record from a Node. The lifetime of every record is entirely the caller's
concern, which makes the structure suitable for pools, arenas and
stack-allocated batches where a container that owns its elements would
force copies or heap allocation.

# Navigating by rank

Unlike an array-backed heap, the tree here is a real pointer structure:
each Node carries parent, left and right links. What keeps the tree
*complete* - every level full except the last, which fills left to right -
is the same binary encoding an array heap exploits implicitly. Label the
nodes in level order counting from 1:

	         1
	       /   \
	      2     3
	     / \   / \
	    4   5 6   7
	   / \
	  8   9

Written in binary the labels are the path from the root: the leading 1 is
the root itself, and each following bit, read most significant first, says
which way to descend - 0 left, 1 right. Rank 5 is 101: from the root go
left, then right. Rank 9 is 1001: left, left, right.

So the slot for the next insertion is found by walking the bits of
count+1, the last node of the tree (the one promoted on removal) is found
by walking the bits of count, and the rank of an arbitrary node is
recovered by walking its parent links upward and reading the edges off in
reverse. No node stores an index, and every walk is one pointer
dereference per bit of the rank.

# Maintaining order

[Root.Insert] links the new node at rank count+1 and sifts it up while it
orders before its parent. [Root.Delete] removes an arbitrary node - not
just the top - by promoting the last node into the vacated slot and then
sifting the promoted node in whichever direction the order invariant
demands. Sifting exchanges the positions of two nodes wholesale, so the
complete shape is never disturbed, and external holders of a Node keep a
valid handle across every rebalance.

The structure is not synchronized. A Root must be externally serialized by
its owner; concurrent read-only traversal of a quiescent tree is safe.
*/
package heap
