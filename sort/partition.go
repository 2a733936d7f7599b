// SPDX-License-Identifier: MIT

// Package sort Hoare-style partitioning.
//
// Both partition variants share the same frame: the pivot value sits at
// data[lo], two cursors walk inward, out-of-place pairs are swapped, and
// the pivot is finally swapped to its boundary slot, whose index is
// returned. Sentinel elements placed by the median-of-three sample (or
// the pivot copy itself) stop the scans early, and every scan is also
// bounded by an explicit index range: a comparator that breaks the
// strict-weak-ordering contract degrades to an unspecified element order,
// never to an out-of-range access.
package sort

// medianOfThree orders the pivot sample in place for a span [lo, hi) of at
// least three elements: after the call data[lo] holds the median of the old
// {data[lo], data[mid], data[hi-1]}, data[mid] the minimum and data[hi-1]
// the maximum of the sample.
//
// The maximum at hi-1 is the right sentinel for partitionRight's left
// scan; the median at lo is the pivot for both partition variants.
func medianOfThree[E any](data []E, less Less[E], lo, hi int) {
	mid := lo + (hi-lo)/2
	sortIndex3(data, less, mid, lo, hi-1)
}

// partitionRight partitions [lo, hi) around the pivot at data[lo]:
// strictly-less elements move left of the final pivot slot, elements equal
// to the pivot stay on the right side. Returns the final pivot index p,
// with lo ≤ p ≤ hi-2.
//
// Preconditions (established by medianOfThree):
//
//   - hi-lo ≥ 3
//   - data[hi-1] ≥ data[lo], the sentinel that stops the left scan before
//     its index bound.
//
// Post-conditions:
//
//   - data[p] holds the pivot value
//   - data[lo:p]  < pivot (strictly)
//   - data[p+1:hi] ≥ pivot
func partitionRight[E any](data []E, less Less[E], lo, hi int) int {
	pivot := data[lo]
	left := lo + 1
	right := hi - 2
	for {
		// Advance over strictly-less elements; the sentinel at hi-1 stops
		// the scan, and the index bound holds even when the comparator
		// breaks the sentinel contract.
		for left < hi-1 && less(data[left], pivot) {
			left++
		}
		// Retreat over not-less elements; bounded by the left cursor.
		for left < right && !less(data[right], pivot) {
			right--
		}
		if left >= right {
			break
		}
		data[left], data[right] = data[right], data[left]
		left++
		right--
	}

	// The boundary sits just below the left cursor; swap the pivot in.
	pivotPos := left - 1
	data[lo] = data[pivotPos]
	data[pivotPos] = pivot

	return pivotPos
}

// partitionLeft partitions [lo, hi) around the pivot at data[lo] with the
// opposite tie rule: elements less-or-equal to the pivot end up left of
// (or at) the final pivot slot, strictly-greater elements right of it.
// Returns the final pivot index p, with lo ≤ p ≤ hi-1.
//
// The quicksort loop reaches for this variant only when the element
// preceding the span already equals the pivot (a continuing duplicate
// run); the pivot is then the span minimum, the left side degenerates to
// "equal to pivot", and only the right side needs further sorting.
//
// Post-conditions:
//
//   - data[p] holds the pivot value
//   - data[lo:p]  ≤ pivot
//   - data[p+1:hi] > pivot
func partitionLeft[E any](data []E, less Less[E], lo, hi int) int {
	pivot := data[lo]
	left := lo + 1
	right := hi - 1
	for {
		// Advance over less-or-equal elements; bounded by the right cursor.
		for left < right && !less(pivot, data[left]) {
			left++
		}
		// Retreat over strictly-greater elements; the pivot copy at lo
		// stops the scan, and the index bound holds even when the
		// comparator breaks the sentinel contract.
		for right > lo && less(pivot, data[right]) {
			right--
		}
		if left >= right {
			break
		}
		data[left], data[right] = data[right], data[left]
		left++
		right--
	}

	// The right cursor rests on the last less-or-equal slot; swap the
	// pivot in.
	data[lo] = data[right]
	data[right] = pivot

	return right
}

// partitionAt partitions [lo, hi) for the select engine: a lone
// compare-exchange for two-element spans (where the median sample would
// alias), otherwise median-of-three followed by partitionRight. Returns
// the final pivot index.
func partitionAt[E any](data []E, less Less[E], lo, hi int) int {
	if hi-lo == 2 {
		compareSwap(data, less, lo, lo+1)

		return lo
	}
	medianOfThree(data, less, lo, hi)

	return partitionRight(data, less, lo, hi)
}
