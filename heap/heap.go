// Package heap implements a fixed-capacity binary max-heap over a
// caller-supplied totally-ordered element type. Elements live in a flat
// slice; parent/child relationships are positional, so the heap owns no
// pointer structure. The heap is not safe for concurrent use.
package heap

import "iter"

// Heap is a fixed-capacity binary max-heap. The comparator defines the total
// order: a positive result means a sorts above b. Flipping the comparator's
// sign turns it into a min-heap.
//
// The zero Heap has capacity 0; every Insert on it fails with ErrHeapFull.
// Use NewHeap or HeapOf instead.
type Heap[T any] struct {
	comparator func(a, b T) int

	// items is the backing storage; its length is the capacity and never
	// changes. Indices [0, size) hold live elements, the rest are zeroed.
	items []T
	size  int
}

// NewHeap constructs an empty heap that can hold up to capacity elements.
// Storage is allocated up front; the heap never grows past capacity.
func NewHeap[T any](capacity int, comparator func(a, b T) int) Heap[T] {
	return Heap[T]{
		comparator: comparator,
		items:      make([]T, capacity),
	}
}

// HeapOf constructs a heap from the given items. Capacity and size are both
// set to len(items), so the result starts full. The items are copied and the
// heap invariant is established in O(n).
func HeapOf[T any](comparator func(a, b T) int, items ...T) Heap[T] {
	out := Heap[T]{
		comparator: comparator,
		items:      make([]T, len(items)),
		size:       len(items),
	}
	copy(out.items, items)
	out.buildHeap()
	return out
}

// Top returns the maximum element without removing it. Fails with
// ErrHeapEmpty on an empty heap.
func (me *Heap[T]) Top() (out T, _ error) {
	if me.size == 0 {
		return out, ErrHeapEmpty
	}
	return me.items[0], nil
}

// ExtractTop removes and returns the maximum element. Fails with
// ErrHeapEmpty on an empty heap.
func (me *Heap[T]) ExtractTop() (out T, _ error) {
	if me.size == 0 {
		return out, ErrHeapEmpty
	}

	out = me.items[0]
	me.items[0] = me.items[me.size-1]
	me.clearSlot(me.size - 1)
	me.size--
	me.siftDown(0)
	return out, nil
}

// Insert adds value to the heap. Fails with ErrHeapFull when the heap is at
// capacity; storage is untouched on failure.
func (me *Heap[T]) Insert(value T) error {
	if me.size == len(me.items) {
		return ErrHeapFull
	}

	me.items[me.size] = value
	me.size++
	me.siftUp(me.size - 1)
	return nil
}

// Remove deletes and returns the element at index. The last live element is
// moved into the vacated slot and sifted in whichever direction restores the
// invariant, so no reserved maximum value is needed and duplicate elements
// are unambiguous. Fails with ErrIndexOutOfRange when index is outside the
// live range.
func (me *Heap[T]) Remove(index int) (out T, _ error) {
	if index < 0 || index >= me.size {
		return out, ErrIndexOutOfRange
	}

	out = me.items[index]
	me.items[index] = me.items[me.size-1]
	me.clearSlot(me.size - 1)
	me.size--

	if index < me.size {
		// The moved element may violate the invariant in either direction.
		// If siftUp relocates it, the slot inherits its former parent's
		// value, which already dominates the subtree, so the following
		// siftDown is a no-op.
		me.siftUp(index)
		me.siftDown(index)
	}
	return out, nil
}

// ChangePriority replaces the element at index with value and restores the
// invariant: sift-up when the value increased, sift-down otherwise. Fails
// with ErrIndexOutOfRange when index is outside the live range.
func (me *Heap[T]) ChangePriority(index int, value T) error {
	if index < 0 || index >= me.size {
		return ErrIndexOutOfRange
	}

	old := me.items[index]
	me.items[index] = value
	if me.comparator(value, old) > 0 {
		me.siftUp(index)
	} else {
		me.siftDown(index)
	}
	return nil
}

// Find scans the live range in array order for the first element the
// comparator considers equal to value, returning its index. Runs in O(n);
// no value-to-index structure is maintained. Absence is a normal result,
// not an error.
func (me *Heap[T]) Find(value T) (index int, exists bool) {
	for i := 0; i < me.size; i++ {
		if me.comparator(me.items[i], value) == 0 {
			return i, true
		}
	}
	return 0, false
}

// Empty reports whether the heap holds no elements.
func (me *Heap[T]) Empty() bool {
	return me.size == 0
}

// Full reports whether the heap is at capacity.
func (me *Heap[T]) Full() bool {
	return me.size == len(me.items)
}

// Size returns the number of live elements.
func (me *Heap[T]) Size() int {
	return me.size
}

// Capacity returns the fixed maximum number of elements.
func (me *Heap[T]) Capacity() int {
	return len(me.items)
}

// All iterates over the live range in raw array order, not sorted order.
// Element copies are yielded; mutating them does not affect the heap.
func (me *Heap[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < me.size; i++ {
			if !yield(i, me.items[i]) {
				return
			}
		}
	}
}

func (me *Heap[T]) clearSlot(index int) {
	var zero T
	me.items[index] = zero
}
