package heap

import (
	"fmt"
	"math/bits"
	"strings"
)

// debug utilities

// TreeString renders the heap one level per line, nodes in level order,
// each formatted by label. A nil label prints ranks. Intended for test
// failure output.
func TreeString(root *Root, label func(*Node) string) string {
	if label == nil {
		label = func(n *Node) string { return fmt.Sprintf("%d", n.Rank()) }
	}

	var sb strings.Builder
	level := 0
	for rank, node := range root.All() {
		if l := bits.Len64(rank); l != level {
			if level != 0 {
				sb.WriteByte('\n')
			}
			level = l
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(label(node))
	}
	return sb.String()
}

// Depth returns the height of the subtree rooted at node, 0 for nil. On a
// complete tree of n nodes Depth of the top is exactly bits.Len64(n).
func Depth(node *Node) int {
	if node == nil {
		return 0
	}
	left, right := Depth(node.left), Depth(node.right)
	if left > right {
		return left + 1
	}
	return right + 1
}
