// SPDX-License-Identifier: MIT

// Package sort provides a generic, in-place sorting and order-statistics
// engine for slices: a hybrid sorter, a stable sorter, low-level sorting
// primitives, and quickselect-based rank queries.
//
// 🚀 What is lvlseq/sort?
//
//	A single comparator-driven toolkit that covers the everyday ordering
//	needs of in-memory data:
//	  • Sort / SortFunc       – hybrid dispatcher (networks → insertion → quicksort)
//	  • WithStable()          – switch to a stable block merge sort
//	  • PartitionByRank       – k-th order statistic via iterative quickselect
//	  • KSmallest / KLargest  – top-k views backed by rank partitioning
//	  • InsertionSort, HeapSort, MergeSort – direct access to the primitives
//	  • IsSorted              – O(n) order predicate
//
// ✨ Key properties:
//   - Fixed compare-exchange networks for spans of 2–5 elements with
//     input-independent comparison counts (1, 3, 5, 9).
//   - Iterative quicksort over an explicit span stack (no recursion),
//     stack capacity estimated as max(2, ⌈1.3·log₂(n)⌉) and grown on demand.
//   - Duplicate-run detection: a span whose predecessor equals the pivot is
//     partitioned with a "less-or-equal to the left" pass and only its right
//     side is revisited, so duplicate-heavy inputs stay near O(n).
//   - Stable path: insertion-sorted blocks merged bottom-up through a single
//     O(n) scratch buffer; ties always favor the left run.
//   - Fully deterministic: no randomization, identical inputs and options
//     produce identical outputs.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/sort"
//
//	nums := []int{5, 2, 9, 1, 5, 6}
//	sort.Sort(nums)                          // [1 2 5 5 6 9]
//
//	type order struct{ price, seq int }
//	byPrice := func(a, b order) bool { return a.price < b.price }
//	err := sort.SortFunc(orders, byPrice, sort.WithStable())
//
//	err = sort.PartitionByRank(nums, len(nums)/2) // median at nums[len/2]
//
// Complexity:
//
//	– Sort (unstable): O(n log n) average, O(n²) deterministic worst case
//	  (median-of-three is not adversary-proof; there is intentionally no
//	  introsort-style fallback, see HeapSort for a guaranteed primitive).
//	– Sort (stable):   O(n log n) worst case, O(n) extra memory.
//	– PartitionByRank: O(n) average, O(n²) worst case, O(1) extra memory.
//
// The comparator must implement a strict weak ordering. A comparator that
// violates it never corrupts memory and never loops forever; the element
// order of the result is simply unspecified.
//
// All operations take exclusive ownership of the slice for the duration of
// the call; nothing in this package starts goroutines or blocks.
package sort
