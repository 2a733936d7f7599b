// SPDX-License-Identifier: MIT

// Package sort fixed-size sorting networks.
//
// Spans of 2–5 elements are sorted by hard-coded compare-exchange
// sequences. Every network performs an input-independent number of
// comparisons (1, 3, 5 and 9 for lengths 2, 3, 4 and 5), which makes the
// small-span cost flat and branch-predictable. The networks are NOT
// stable; the dispatcher only routes to them on the unstable path.
package sort

// compareSwap orders the pair at indices i and j: one comparison, at most
// one swap. The element at i ends up not-greater than the element at j.
func compareSwap[E any](data []E, less Less[E], i, j int) {
	if less(data[j], data[i]) {
		data[i], data[j] = data[j], data[i]
	}
}

// sortIndex3 orders the elements at the three indices a, b, c so that
// data[a] ≤ data[b] ≤ data[c], using exactly three comparisons. The
// indices may be non-adjacent; the partitioner exploits this to order the
// (mid, lo, hi-1) pivot sample in place.
func sortIndex3[E any](data []E, less Less[E], a, b, c int) {
	compareSwap(data, less, a, b)
	compareSwap(data, less, b, c)
	compareSwap(data, less, a, b)
}

// insertIndex3 places the element at index a relative to the ordered pair
// at indices b and c, so that data[a] ≤ data[b] ≤ data[c] afterwards.
//
// Precondition: data[b] ≤ data[c].
//
// Both comparisons are evaluated before any move, keeping the comparison
// count at exactly two regardless of where the element lands.
func insertIndex3[E any](data []E, less Less[E], a, b, c int) {
	x := data[a]
	beforeB := less(x, data[b])
	beforeC := less(x, data[c])
	switch {
	case beforeB:
		// x precedes the pair; every element already sits in its slot.
	case beforeC:
		// x belongs between the pair members.
		data[a], data[b] = data[b], x
	default:
		// x follows the pair; rotate the triple left.
		data[a], data[b], data[c] = data[b], data[c], x
	}
}

// sort4 sorts the four elements starting at lo with the optimal 5-comparator
// network: two independent pairs, a cross-merge, and a final middle fix-up.
func sort4[E any](data []E, less Less[E], lo int) {
	compareSwap(data, less, lo, lo+1)
	compareSwap(data, less, lo+2, lo+3)
	compareSwap(data, less, lo, lo+2)
	compareSwap(data, less, lo+1, lo+3)
	compareSwap(data, less, lo+1, lo+2)
}

// sort5 sorts the five elements starting at lo in exactly nine comparisons:
// two pair exchanges build ordered seeds, a partial-three network extends
// the right seed to an ordered run of three, one exchange separates the
// maximum, and two partial-three networks insert the remaining elements.
func sort5[E any](data []E, less Less[E], lo int) {
	compareSwap(data, less, lo, lo+1)
	compareSwap(data, less, lo+3, lo+4)
	insertIndex3(data, less, lo+2, lo+3, lo+4)
	compareSwap(data, less, lo+1, lo+4)
	insertIndex3(data, less, lo, lo+2, lo+3)
	insertIndex3(data, less, lo+1, lo+2, lo+3)
}

// smallSort sorts the span [lo, hi) with the fixed network matching its
// length. Lengths 0 and 1 are no-ops; lengths above maxNetworkLen must not
// reach this function.
func smallSort[E any](data []E, less Less[E], lo, hi int) {
	switch hi - lo {
	case 2:
		compareSwap(data, less, lo, lo+1)
	case 3:
		sortIndex3(data, less, lo, lo+1, lo+2)
	case 4:
		sort4(data, less, lo)
	case 5:
		sort5(data, less, lo)
	}
}
