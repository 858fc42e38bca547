package heap

import "testing"

// orderKeeping never reorders, so insertion order is rank order and the
// navigation can be checked in isolation from the sifting.
func orderKeeping(a, b *Node) int { return 0 }

// buildRanked inserts n nodes under the order keeping comparator and
// returns them indexed by rank (index 0 unused).
func buildRanked(root *Root, n int) []*Node {
	byRank := make([]*Node, n+1)
	for rank := 1; rank <= n; rank++ {
		byRank[rank] = &Node{}
		root.Insert(byRank[rank], orderKeeping)
	}
	return byRank
}

func TestSlotDescent(t *testing.T) {
	// The slot for a rank follows the rank's bits below the leading 1,
	// most significant first, 0 left 1 right:
	//
	//	         1
	//	       /   \
	//	      2     3
	//	     / \   / \
	//	    4   5 6   7
	//	   / \
	//	  8   9
	type args struct {
		count uint64
		rank  uint64
	}
	tests := []struct {
		name       string
		args       args
		wantParent uint64 // 0 for the root slot
	}{
		{"root", args{1, 1}, 0},
		{"left of root", args{3, 2}, 1},
		{"right of root", args{3, 3}, 1},
		{"101 is right of 10", args{9, 5}, 2},
		{"110 is left of 11", args{9, 6}, 3},
		{"1001 is right of 100", args{9, 9}, 4},
		{"next slot parent after 9 is 101", args{9, 10}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var root Root
			byRank := buildRanked(&root, int(tt.args.count))

			parent, link := root.slot(tt.args.rank)
			if tt.wantParent == 0 {
				if parent != nil {
					t.Errorf("slot() parent = %v, want nil", parent)
				}
				if link != &root.node {
					t.Errorf("slot() link is not the root slot")
				}
				return
			}
			if parent != byRank[tt.wantParent] {
				t.Errorf("slot() parent has rank %d, want %d", rankOf(parent), tt.wantParent)
			}
			if tt.args.rank <= tt.args.count && *link != byRank[tt.args.rank] {
				t.Errorf("slot() link does not hold the node at rank %d", tt.args.rank)
			}
		})
	}
}

func TestRankRoundTrip(t *testing.T) {
	// rankOf reads the edges off bottom up, so it must invert the
	// descent for every rank.
	for _, count := range []int{1, 2, 3, 7, 8, 31, 32, 33, 100} {
		var root Root
		byRank := buildRanked(&root, count)
		for rank := 1; rank <= count; rank++ {
			if got := byRank[rank].Rank(); got != uint64(rank) {
				t.Errorf("count %d: Rank() = %d, want %d", count, got, rank)
			}
			if got := root.Find(uint64(rank)); got != byRank[rank] {
				t.Errorf("count %d: Find(%d) returned the wrong node", count, rank)
			}
		}
	}
}

func TestInsertSlotTracksCount(t *testing.T) {
	// After k inserts the next slot is rank k+1, whose parent is the
	// node at rank (k+1)/2.
	var root Root
	byRank := buildRanked(&root, 20)
	for k := 1; k <= 20; k++ {
		root.count = uint64(k) // restrict the view to the first k nodes
		parent, _ := root.InsertSlot()
		if parent != byRank[(k+1)/2] {
			t.Errorf("count %d: InsertSlot() parent rank = %d, want %d",
				k, rankOf(parent), (k+1)/2)
		}
	}
}

func TestFindBounds(t *testing.T) {
	var root Root
	if got := root.Find(1); got != nil {
		t.Errorf("Find(1) on empty root = %v, want nil", got)
	}

	node := &Node{}
	root.Insert(node, orderKeeping)
	if got := root.Find(1); got != node {
		t.Errorf("Find(1) on single node tree did not return the node")
	}
	if got := root.Find(0); got != nil {
		t.Errorf("Find(0) = %v, want nil", got)
	}
	if got := root.Find(2); got != nil {
		t.Errorf("Find(2) on single node tree = %v, want nil", got)
	}
}
