// SPDX-License-Identifier: MIT

package sort

import "golang.org/x/exp/constraints"

// InsertionSort sorts data in place by natural ascending order using the
// stable shift-and-insert algorithm. It is the right tool for short or
// nearly-sorted slices; for anything else prefer Sort.
//
// Complexity:
//
//   - Time:  O(n + inversions), linear on sorted input, O(n²) worst case.
//   - Space: O(1).
//
// Stability: equal elements keep their relative input order.
func InsertionSort[E constraints.Ordered](data []E) {
	insertionSortRange(data, naturalLess[E](), 0, len(data))
}

// InsertionSortFunc sorts data in place with the supplied comparator using
// the stable shift-and-insert algorithm. See InsertionSort for the
// complexity profile.
//
// Returns ErrNilComparator if less is nil; slices of length 0 or 1 are a
// no-op.
func InsertionSortFunc[E any](data []E, less Less[E]) error {
	if less == nil {
		return ErrNilComparator
	}
	insertionSortRange(data, less, 0, len(data))

	return nil
}

// insertionSortRange sorts the span [lo, hi) of data in place.
//
// Each element is lifted out, the ordered prefix is shifted right while its
// tail is strictly greater, and the element drops into the gap. The strict
// comparison makes the pass stable (an equal element never jumps over its
// left twin) and adaptive (one comparison per element on sorted input).
func insertionSortRange[E any](data []E, less Less[E], lo, hi int) {
	var j int
	var v E
	for i := lo + 1; i < hi; i++ {
		v = data[i]
		for j = i; j > lo && less(v, data[j-1]); j-- {
			data[j] = data[j-1]
		}
		data[j] = v
	}
}
