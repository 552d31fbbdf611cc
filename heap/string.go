package heap

import (
	"fmt"
	"strings"
)

// String renders every storage slot space-separated in raw array order,
// including the unused tail past Size(), which shows up as zero values.
// This mirrors the layout for debugging; it is not a stable format and
// not sorted order.
func (me *Heap[T]) String() string {
	var sb strings.Builder
	for i, item := range me.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	return sb.String()
}
