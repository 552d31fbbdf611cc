package heap

// siftUp bubbles the element at index toward the root until its parent
// compares greater or equal, or the root is reached. O(log n).
func (me *Heap[T]) siftUp(index int) {
	for index > 0 && me.comparator(me.items[index], me.items[parent(index)]) > 0 {
		me.swap(index, parent(index))
		index = parent(index)
	}
}

// siftDown pushes the element at index toward the leaves, swapping with the
// larger child until neither existing child compares greater. When both
// children exceed the element and compare equal to each other, the left
// child wins. O(log n).
func (me *Heap[T]) siftDown(index int) {
	for {
		max := index
		if l := leftChild(index); l < me.size && me.comparator(me.items[l], me.items[max]) > 0 {
			max = l
		}
		if r := rightChild(index); r < me.size && me.comparator(me.items[r], me.items[max]) > 0 {
			max = r
		}
		if max == index {
			return
		}
		me.swap(index, max)
		index = max
	}
}

// buildHeap establishes the invariant over the whole live range by sifting
// down every non-leaf position from the bottom up. The per-level work shrinks
// geometrically, so the total is O(n) rather than O(n log n).
func (me *Heap[T]) buildHeap() {
	for i := me.size / 2; i >= 0; i-- {
		me.siftDown(i)
	}
}

func (me *Heap[T]) swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

func parent(index int) int {
	return (index - 1) / 2
}

func leftChild(index int) int {
	return 2*index + 1
}

func rightChild(index int) int {
	return 2*index + 2
}
