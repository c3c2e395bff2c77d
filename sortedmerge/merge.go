package sortedmerge

import "container/heap"

// MergeTwo stably merges two ascending sequences into one ascending
// sequence of length len(x)+len(y).
//
// Complexity: O(len(x)+len(y)) time and space.
func MergeTwo(x, y []float64) []float64 {
	out := make([]float64, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		if x[i] < y[j] {
			out = append(out, x[i])
			i++
		} else {
			out = append(out, y[j])
			j++
		}
	}
	out = append(out, x[i:]...)
	out = append(out, y[j:]...)
	return out
}

// mergeItem is one entry in the k-way merge heap: the next unconsumed
// value of a source list, together with enough bookkeeping to advance
// that list once the value is popped.
type mergeItem struct {
	value float64
	list  int
	next  int
}

// mergeHeap implements container/heap.Interface over mergeItem, ordered
// by ascending value, then by ascending source list index.
type mergeHeap []mergeItem

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value < h[j].value
	}
	return h[i].list < h[j].list
}
func (h mergeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(mergeItem)) }
func (h *mergeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// MergeK merges any number of ascending sequences into one ascending
// sequence via a min-heap keyed on (current value, list index),
// advancing exactly one source list per pop. Output length equals the
// sum of the input lengths.
//
// Complexity: O(N log k) time where N is the total element count and k
// is the number of lists; O(N+k) space.
func MergeK(lists [][]float64) []float64 {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	out := make([]float64, 0, total)

	h := make(mergeHeap, 0, len(lists))
	for li, l := range lists {
		if len(l) > 0 {
			h = append(h, mergeItem{value: l[0], list: li, next: 1})
		}
	}
	heap.Init(&h)

	for h.Len() > 0 {
		item := heap.Pop(&h).(mergeItem)
		out = append(out, item.value)
		if src := lists[item.list]; item.next < len(src) {
			heap.Push(&h, mergeItem{value: src[item.next], list: item.list, next: item.next + 1})
		}
	}
	return out
}
