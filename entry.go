package heap

import "unsafe"

// Accessor resolves a Node back to the record embedding it. The offset
// from record to Node field is fixed for a given type, so resolution is a
// single pointer adjustment, with no reflection and no per-record storage.
// Construct one per embedding type, typically as a package-level variable.
type Accessor[T any] struct {
	off uintptr
}

// NewAccessor probes the offset of the Node field selected by member,
// which must return the address of a Node embedded directly within its
// argument:
//
//	type item struct {
//		value int
//		node  heap.Node
//	}
//
//	var itemOf = heap.NewAccessor(func(i *item) *heap.Node { return &i.node })
func NewAccessor[T any](member func(*T) *Node) Accessor[T] {
	probe := new(T)
	return Accessor[T]{
		off: uintptr(unsafe.Pointer(member(probe))) - uintptr(unsafe.Pointer(probe)),
	}
}

// Entry returns the record embedding node. A nil node resolves to a nil
// record.
func (a Accessor[T]) Entry(node *Node) *T {
	if node == nil {
		return nil
	}
	return (*T)(unsafe.Add(unsafe.Pointer(node), -int(a.off)))
}
