package heaptesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	heap "github.com/John-sanpe/light-heap"
)

// TestContext carries the shared state for generated heap workloads.
type TestContext struct {
	T   *testing.T
	Rng *rand.Rand
}

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed
	// value so that the generated workload is the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	return TestContext{
		T:   t,
		Rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Entry is the record type embedded workloads are built from: a Node plus
// a comparable key and a uuid so that individual entries stay identifiable
// in failure output regardless of key collisions.
type Entry struct {
	Node heap.Node
	ID   string
	Key  uint32
}

// EntryOf resolves a heap.Node back to its Entry.
var EntryOf = heap.NewAccessor(func(e *Entry) *heap.Node { return &e.Node })

// CompareEntries orders entries by Key ascending.
func CompareEntries(a, b *heap.Node) int {
	ka, kb := EntryOf.Entry(a).Key, EntryOf.Entry(b).Key
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return 0
}

// LabelEntry formats an entry's key and short id for TreeString dumps.
func LabelEntry(n *heap.Node) string {
	e := EntryOf.Entry(n)
	return fmt.Sprintf("%d(%s)", e.Key, e.ID[:8])
}

// GenerateEntries creates n entries with random keys. Keys are drawn from
// a range a quarter the size of n so that duplicate keys occur routinely;
// the tie handling in fixup and erase is only reached with duplicates
// present.
func (c *TestContext) GenerateEntries(n int) []*Entry {
	keyRange := uint32(n/4 + 1)
	entries := make([]*Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, &Entry{
			ID:  uuid.NewString(),
			Key: uint32(c.Rng.Intn(int(keyRange))),
		})
	}
	return entries
}

// BuildHeap inserts n generated entries into root, checking the structural
// invariants after every insertion, and returns the entries in insertion
// order.
func (c *TestContext) BuildHeap(root *heap.Root, n int) []*Entry {
	entries := c.GenerateEntries(n)
	for _, e := range entries {
		root.Insert(&e.Node, CompareEntries)
		CheckInvariants(c.T, root, CompareEntries)
	}
	return entries
}
