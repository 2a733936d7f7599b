// SPDX-License-Identifier: MIT

package sort

import "math"

// span is a half-open index range [lo, hi) over the slice being sorted.
type span struct {
	lo, hi int
}

// estimateStackDepth returns the initial capacity of the pending-span
// stack for an n-element sort: max(minStackDepth, ⌈1.3·log₂(n)⌉).
//
// Each partition pushes at most one extra span per level, so a balanced
// run needs about log₂(n) slots; the slack factor absorbs the skewed
// splits a median-of-three pivot produces in practice. The stack is
// slice-backed, so an estimate miss only costs a reallocation.
func estimateStackDepth(n int) int {
	if n < 2 {
		return minStackDepth
	}
	depth := int(math.Ceil(stackSlackFactor * math.Log2(float64(n))))
	if depth < minStackDepth {
		depth = minStackDepth
	}

	return depth
}

// quicksort sorts data in place with an iterative hybrid quicksort.
//
// The classic recursion is replaced by an explicit stack of pending spans,
// seeded with the full range. Each popped span is dispatched by length:
//
//  1. length ≤ 1          – trivially sorted, discard;
//  2. length ≤ 5          – fixed sorting network;
//  3. length < threshold  – insertion sort;
//  4. otherwise           – median-of-three partition, push the parts.
//
// Before partitioning, the element immediately preceding the span is
// inspected (when one exists): if it does not compare less than the fresh
// pivot, the span is a continuation of a duplicate run. Every element in
// it is ≥ the predecessor, which was finalized by an earlier partition, so
// the pivot is the span minimum. partitionLeft then sweeps the whole
// equal-run into final position at once and only the right remainder is
// pushed. This is what keeps few-distinct-value inputs near O(n).
//
// Sub-spans of fewer than two elements are never pushed. The pivot slot
// itself is final and excluded from both sides, so every pushed span is
// strictly smaller than its parent and the loop terminates.
//
// Deterministic by construction: pivot choice depends only on element
// values, never on randomness. Adversarial inputs that defeat
// median-of-three degrade to O(n²); that trade-off is accepted in exchange
// for reproducible runs (see the package documentation).
func quicksort[E any](data []E, less Less[E], threshold int) {
	// 1) Seed the pending stack with the whole slice.
	stack := make([]span, 0, estimateStackDepth(len(data)))
	stack = append(stack, span{lo: 0, hi: len(data)})

	var top span
	var start, end, size, pivot int
	for len(stack) > 0 {
		// 2) Pop the most recently pushed span.
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		start, end = top.lo, top.hi

		// 3) Dispatch by span length.
		size = end - start
		if size <= 1 {
			continue
		}
		if size <= maxNetworkLen {
			smallSort(data, less, start, end)

			continue
		}
		if size < threshold {
			insertionSortRange(data, less, start, end)

			continue
		}

		// 4) Materialize the median-of-three pivot at data[start].
		medianOfThree(data, less, start, end)

		// 5) Duplicate-run check: a predecessor that is not less than the
		//    pivot proves the pivot equals the span minimum.
		if start > 0 && !less(data[start-1], data[start]) {
			pivot = partitionLeft(data, less, start, end)
			// The left side is one run of pivot-equal elements, already in
			// final position; only the right side can need work.
			if end > pivot+2 {
				stack = append(stack, span{lo: pivot + 1, hi: end})
			}

			continue
		}

		// 6) Regular partition; push both non-trivial sides.
		pivot = partitionRight(data, less, start, end)
		if end > pivot+2 {
			stack = append(stack, span{lo: pivot + 1, hi: end})
		}
		if pivot > start+1 {
			stack = append(stack, span{lo: start, hi: pivot})
		}
	}
}
