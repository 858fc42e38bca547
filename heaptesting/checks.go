package heaptesting

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	heap "github.com/John-sanpe/light-heap"
)

// The checkers walk the raw links and cross-check them against the rank
// navigation, so a bug in either representation shows up as a mismatch
// between the two.

// CheckShape verifies the complete-tree shape: every reachable node's
// upward-computed rank agrees with a downward Find of the same rank, link
// back references are mutual, and the height of the tree is exactly
// bits.Len64(count).
func CheckShape(t *testing.T, root *heap.Root) {
	t.Helper()

	for rank, node := range root.All() {
		require.Equal(t, rank, node.Rank(), "rank mismatch\n%s", heap.TreeString(root, nil))
		require.Same(t, node, root.Find(rank))
		if l := node.Left(); l != nil {
			require.Same(t, node, l.Parent())
		}
		if r := node.Right(); r != nil {
			require.NotNil(t, node.Left(), "right child without left at rank %d", rank)
			require.Same(t, node, r.Parent())
		}
	}

	require.Equal(t, bits.Len64(root.Count()), heap.Depth(root.Top()))
}

// CheckOrder verifies the heap-order invariant: every linked node orders
// no earlier than its parent.
func CheckOrder(t *testing.T, root *heap.Root, cmp heap.CompareFunc) {
	t.Helper()

	for rank, node := range root.All() {
		if p := node.Parent(); p != nil {
			require.LessOrEqual(t, cmp(p, node), 0,
				"order violated at rank %d:\n%s", rank, heap.TreeString(root, nil))
		}
	}
}

// CheckCount verifies that the count is authoritative: it equals the
// number of nodes reachable from the top by the raw links.
func CheckCount(t *testing.T, root *heap.Root) {
	t.Helper()
	require.Equal(t, root.Count(), reachable(root.Top()))
}

func reachable(node *heap.Node) uint64 {
	if node == nil {
		return 0
	}
	return 1 + reachable(node.Left()) + reachable(node.Right())
}

// CheckInvariants runs all three checks.
func CheckInvariants(t *testing.T, root *heap.Root, cmp heap.CompareFunc) {
	t.Helper()
	CheckShape(t, root)
	CheckOrder(t, root, cmp)
	CheckCount(t, root)
}
