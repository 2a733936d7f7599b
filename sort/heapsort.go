// SPDX-License-Identifier: MIT

package sort

import "golang.org/x/exp/constraints"

// HeapSort sorts data in place by natural ascending order using a
// sift-down max-heap. It is the guaranteed-O(n log n) primitive of the
// package: slower than the hybrid Sort on typical inputs, but immune to
// the adversarial patterns that push the quicksort path to O(n²).
//
// The hybrid sorter deliberately does not fall back to this function; a
// caller who needs the worst-case bound opts in by calling it directly.
//
// Complexity:
//
//   - Time:  O(n log n) worst case.
//   - Space: O(1).
//
// Not stable.
func HeapSort[E constraints.Ordered](data []E) {
	heapSort(data, naturalLess[E]())
}

// HeapSortFunc sorts data in place with the supplied comparator using a
// sift-down max-heap. See HeapSort for the complexity profile.
//
// Returns ErrNilComparator if less is nil; slices of length 0 or 1 are a
// no-op.
func HeapSortFunc[E any](data []E, less Less[E]) error {
	if less == nil {
		return ErrNilComparator
	}
	heapSort(data, less)

	return nil
}

// heapSort builds a max-heap over the whole slice, then repeatedly swaps
// the root behind the shrinking heap boundary and restores the heap.
func heapSort[E any](data []E, less Less[E]) {
	n := len(data)

	// 1) Heapify: sift down every internal node, deepest first.
	for root := n/2 - 1; root >= 0; root-- {
		siftDown(data, less, root, n)
	}

	// 2) Extract the maximum n-1 times; the suffix beyond `end` is sorted.
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, less, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree rooted at root,
// treating data[:hi] as the heap.
func siftDown[E any](data []E, less Less[E], root, hi int) {
	var child int
	for {
		child = 2*root + 1
		if child >= hi {
			return
		}
		// Prefer the greater child so the parent ends above both.
		if child+1 < hi && less(data[child], data[child+1]) {
			child++
		}
		if !less(data[root], data[child]) {
			return
		}
		data[root], data[child] = data[child], data[root]
		root = child
	}
}
