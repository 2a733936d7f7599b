// SPDX-License-Identifier: MIT

// Package sort public dispatcher.
//
// Sort and SortFunc are the primary entry points: they validate input,
// gather the functional options and route the slice to the strategy
// matching its length and the stability request. The low-level primitives
// (InsertionSort, HeapSort, MergeSort, PartitionByRank, …) live in their
// algorithm files and share the same validation conventions.
package sort

import "golang.org/x/exp/constraints"

// Sort sorts data in place by natural ascending order.
//
// Strategy (unstable, default):
//
//	length ≤ 1          – no-op
//	length ≤ 5          – fixed sorting network
//	length < threshold  – insertion sort (threshold defaults to
//	                      DefaultInsertionThreshold, see WithInsertionThreshold)
//	otherwise           – iterative median-of-three quicksort
//
// With WithStable() the call routes to the stable merge path instead:
// insertion sort below the threshold, block merge sort above it, one O(n)
// scratch buffer allocated for the call.
//
// Complexity:
//
//   - Time:  O(n log n) average; O(n²) deterministic worst case on the
//     unstable path, O(n log n) worst case on the stable path.
//   - Space: O(log n) span stack (unstable) or O(n) scratch (stable).
//
// Identical input and options always produce the identical result.
func Sort[E constraints.Ordered](data []E, opts ...Option) {
	sortSlice(data, naturalLess[E](), gatherOptions(opts...))
}

// SortFunc sorts data in place with the supplied comparator, dispatching
// exactly like Sort.
//
// Returns ErrNilComparator if less is nil; otherwise the error is always
// nil.
func SortFunc[E any](data []E, less Less[E], opts ...Option) error {
	if less == nil {
		return ErrNilComparator
	}
	sortSlice(data, less, gatherOptions(opts...))

	return nil
}

// IsSorted reports whether data is in natural ascending order.
// Complexity: O(n) time, O(1) space, short-circuits on the first inversion.
func IsSorted[E constraints.Ordered](data []E) bool {
	return IsSortedFunc(data, naturalLess[E]())
}

// IsSortedFunc reports whether data is in ascending order under the
// supplied comparator. A nil comparator is a programmer error and panics
// with ErrNilComparator's message (a predicate has no error channel).
func IsSortedFunc[E any](data []E, less Less[E]) bool {
	if less == nil {
		panic(ErrNilComparator.Error())
	}
	for i := len(data) - 1; i > 0; i-- {
		if less(data[i], data[i-1]) {
			return false
		}
	}

	return true
}

// naturalLess adapts the built-in < ordering of an Ordered type to the
// package comparator shape. Every natural-ordering wrapper funnels through
// it, so each algorithm exists in exactly one comparator-driven form.
func naturalLess[E constraints.Ordered]() Less[E] {
	return func(a, b E) bool { return a < b }
}

// sortSlice routes a validated call to the strategy matching the slice
// length and the gathered options.
func sortSlice[E any](data []E, less Less[E], cfg Options) {
	n := len(data)

	// 1) Trivial lengths are already sorted.
	if n <= 1 {
		return
	}

	// 2) Stable path: insertion below the threshold, block merge above.
	//    The fixed networks reorder equal elements, so the stable path
	//    never touches them even for tiny slices.
	if cfg.Stable {
		if n < cfg.InsertionThreshold {
			insertionSortRange(data, less, 0, n)

			return
		}
		scratch := make([]E, n)
		mergeSort(data, less, scratch, cfg.InsertionThreshold)

		return
	}

	// 3) Unstable path: network, insertion, then quicksort by length.
	if n <= maxNetworkLen {
		smallSort(data, less, 0, n)

		return
	}
	if n < cfg.InsertionThreshold {
		insertionSortRange(data, less, 0, n)

		return
	}
	quicksort(data, less, cfg.InsertionThreshold)
}
