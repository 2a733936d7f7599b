// SPDX-License-Identifier: MIT

// Package sort order statistics: rank partitioning and top-k views.
package sort

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// PartitionByRank rearranges data in place (natural ascending order) so
// that data[k] holds the element of rank k, i.e. the element that would
// land at index k after a full sort. Every element before index k compares
// not-after data[k], every element after compares not-before it; within
// the two sides the order is unspecified.
//
// Complexity:
//
//   - Time:  O(n) average, O(n²) deterministic worst case (quickselect
//     shares the quicksort pivot scheme).
//   - Space: O(1).
//
// Returns ErrRankOutOfRange if k lies outside [0, len(data)); a
// zero-length slice therefore rejects every k. A one-element slice with
// k=0 is a no-op.
func PartitionByRank[E constraints.Ordered](data []E, k int) error {
	return PartitionByRankFunc(data, k, naturalLess[E]())
}

// PartitionByRankFunc rearranges data in place so that data[k] holds the
// element of rank k under the supplied comparator. See PartitionByRank for
// the contract and complexity.
//
// Returns ErrNilComparator if less is nil, ErrRankOutOfRange if k lies
// outside [0, len(data)).
func PartitionByRankFunc[E any](data []E, k int, less Less[E]) error {
	// 1) Validate the comparator.
	if less == nil {
		return ErrNilComparator
	}

	// 2) Validate the rank against the slice bounds. This runs before the
	//    trivial-length return, so an empty slice rejects every rank.
	if k < 0 || k >= len(data) {
		return fmt.Errorf("%w: k=%d, len=%d", ErrRankOutOfRange, k, len(data))
	}

	// 3) A single element is its own order statistic.
	if len(data) == 1 {
		return nil
	}

	// 4) Narrow onto the rank.
	selectRank(data, less, k)

	return nil
}

// KSmallest rearranges data so that its first k slots hold the k smallest
// elements (natural ascending order) and returns data[:k]. The returned
// slice aliases data (no copy is made) and its internal order is
// unspecified; sort it if presentation order matters.
//
// k may range over [0, len(data)]: 0 yields an empty view, len(data) the
// whole slice. Other values outside that range return ErrRankOutOfRange.
//
// Complexity: O(n) average, O(1) extra space.
func KSmallest[E constraints.Ordered](data []E, k int) ([]E, error) {
	return KSmallestFunc(data, k, naturalLess[E]())
}

// KSmallestFunc rearranges data so that its first k slots hold the k
// smallest elements under the supplied comparator and returns data[:k].
// See KSmallest for the contract.
func KSmallestFunc[E any](data []E, k int, less Less[E]) ([]E, error) {
	if less == nil {
		return nil, ErrNilComparator
	}
	if k < 0 || k > len(data) {
		return nil, fmt.Errorf("%w: k=%d, len=%d", ErrRankOutOfRange, k, len(data))
	}

	// Only a proper split needs a partition: k==0 and k==len(data) already
	// describe the empty and the full prefix.
	if k > 0 && k < len(data) {
		selectRank(data, less, k)
	}

	return data[:k], nil
}

// KLargest rearranges data so that its last k slots hold the k largest
// elements (natural ascending order) and returns that suffix view. The
// returned slice aliases data and its internal order is unspecified.
//
// k may range over [0, len(data)]; other values return ErrRankOutOfRange.
//
// Complexity: O(n) average, O(1) extra space.
func KLargest[E constraints.Ordered](data []E, k int) ([]E, error) {
	return KLargestFunc(data, k, naturalLess[E]())
}

// KLargestFunc rearranges data so that its last k slots hold the k largest
// elements under the supplied comparator and returns that suffix view.
// See KLargest for the contract.
func KLargestFunc[E any](data []E, k int, less Less[E]) ([]E, error) {
	if less == nil {
		return nil, ErrNilComparator
	}
	if k < 0 || k > len(data) {
		return nil, fmt.Errorf("%w: k=%d, len=%d", ErrRankOutOfRange, k, len(data))
	}

	// The k largest live above the element of rank len-k.
	split := len(data) - k
	if split > 0 && split < len(data) {
		selectRank(data, less, split)
	}

	return data[split:], nil
}

// selectRank is the iterative quickselect core: it narrows the live span
// [lo, hi) around rank k until the pivot lands exactly on k.
//
// Each round partitions the span (median-of-three + partition-right, with
// a compare-exchange degenerate for two-element spans) and keeps only the
// side containing k. The pivot slot is final after its round, so the span
// shrinks strictly and the loop terminates; a one-element span is the rank
// itself.
//
// Preconditions: len(data) ≥ 2 and 0 ≤ k < len(data).
func selectRank[E any](data []E, less Less[E], k int) {
	lo, hi := 0, len(data)
	var pivot int
	for hi-lo > 1 {
		pivot = partitionAt(data, less, lo, hi)
		switch {
		case pivot == k:
			return
		case k < pivot:
			hi = pivot
		default:
			lo = pivot + 1
		}
	}
}
