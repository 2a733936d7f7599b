// SPDX-License-Identifier: MIT

package sort

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MergeSort stably sorts data in place by natural ascending order, merging
// through the caller-provided scratch buffer. It is the allocation-free
// sibling of Sort(..., WithStable()): callers that sort repeatedly can
// reuse one buffer across calls.
//
// scratch must hold at least len(data) elements and must not overlap
// data; its contents are overwritten and carry no meaning afterwards.
//
// Complexity:
//
//   - Time:  O(n log n) worst case.
//   - Space: O(1) beyond the supplied scratch.
//
// Returns ErrShortScratch if the buffer is too small. Slices of length 0
// or 1 are a no-op and ignore the buffer entirely.
func MergeSort[E constraints.Ordered](data []E, scratch []E, opts ...Option) error {
	return MergeSortFunc(data, naturalLess[E](), scratch, opts...)
}

// MergeSortFunc stably sorts data in place with the supplied comparator,
// merging through the caller-provided scratch buffer. Equal elements keep
// their relative input order. The scratch contract matches MergeSort: at
// least len(data) elements, no overlap with data.
//
// The only option honored here is WithInsertionThreshold, which sets the
// block width of the pre-sorting pass; WithStable is implied.
//
// Returns ErrNilComparator if less is nil and ErrShortScratch if
// len(scratch) < len(data). Validation happens before any element moves,
// so on error data is untouched.
func MergeSortFunc[E any](data []E, less Less[E], scratch []E, opts ...Option) error {
	// 1) Validate the comparator.
	if less == nil {
		return ErrNilComparator
	}

	// 2) Trivial lengths need neither buffer nor comparisons.
	if len(data) <= 1 {
		return nil
	}

	// 3) Validate the scratch capacity: one slot per element.
	if len(scratch) < len(data) {
		return fmt.Errorf("%w: need %d, have %d", ErrShortScratch, len(data), len(scratch))
	}

	// 4) Gather options and run the merge.
	cfg := gatherOptions(opts...)
	mergeSort(data, less, scratch, cfg.InsertionThreshold)

	return nil
}

// mergeSort is the bottom-up stable block merge behind the stable path.
//
// Phase one insertion-sorts contiguous blocks of `block` elements, short
// runs where insertion sort beats merging. Phase two repeatedly merges
// adjacent run pairs of the current width through scratch, doubling the
// width until a single run covers the slice. A trailing run without a
// partner is left alone for that round; a later round picks it up.
//
// Preconditions: len(data) ≥ 2, len(scratch) ≥ len(data), block ≥
// MinInsertionThreshold.
func mergeSort[E any](data []E, less Less[E], scratch []E, block int) {
	n := len(data)

	// 1) Pre-sort blocks of `block` elements.
	var lo, mid, hi int
	for lo = 0; lo < n; lo += block {
		hi = lo + block
		if hi > n {
			hi = n
		}
		insertionSortRange(data, less, lo, hi)
	}

	// 2) Merge adjacent runs, doubling the run width each round.
	for width := block; width < n; width *= 2 {
		for lo = 0; lo+width < n; lo += 2 * width {
			mid = lo + width
			hi = lo + 2*width
			if hi > n {
				hi = n
			}
			mergeRuns(data, less, scratch, lo, mid, hi)
		}
	}
}

// mergeRuns merges the adjacent sorted runs data[lo:mid] and data[mid:hi]
// through scratch[lo:hi] and copies the result back.
//
// On a tie the left run wins; together with insertion-sort stability this
// is what preserves the input order of equal elements end to end.
func mergeRuns[E any](data []E, less Less[E], scratch []E, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		// Take from the right run only on a strict win, so equal elements
		// drain from the left run first.
		if less(data[j], data[i]) {
			scratch[k] = data[j]
			j++
		} else {
			scratch[k] = data[i]
			i++
		}
		k++
	}

	// Exactly one run has leftovers; flush it and copy the merge home.
	k += copy(scratch[k:hi], data[i:mid])
	copy(scratch[k:hi], data[j:hi])
	copy(data[lo:hi], scratch[lo:hi])
}
