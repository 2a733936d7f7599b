// SPDX-License-Identifier: MIT

// Package sort core types and configuration options.
//
// This file defines the comparator type, the package-level sentinel errors,
// the tuning constants, and the functional options accepted by the public
// entry points. All algorithms return the sentinels defined here and tests
// match them via errors.Is. Panics are reserved for programmer errors
// (invalid option values, nil comparator on a predicate).
package sort

import "errors"

// Sentinel errors returned by the sorting and selection entry points.
var (
	// ErrNilComparator indicates that a nil Less function was passed to one
	// of the *Func entry points. A comparator is mandatory there; the
	// natural-ordering wrappers (Sort, PartitionByRank, …) never return it.
	ErrNilComparator = errors.New("sort: comparator is nil")

	// ErrRankOutOfRange indicates that the requested rank k lies outside
	// [0, len(data)). A zero-length slice therefore rejects every rank.
	ErrRankOutOfRange = errors.New("sort: rank out of range")

	// ErrShortScratch indicates that the caller-provided scratch buffer is
	// shorter than the data slice; a stable merge needs one scratch slot
	// per element.
	ErrShortScratch = errors.New("sort: scratch buffer shorter than data")

	// ErrBadThreshold indicates that WithInsertionThreshold received a value
	// below MinInsertionThreshold. Option constructors panic with this
	// message instead of returning it: a bad threshold is a programmer
	// error, not an input condition.
	ErrBadThreshold = errors.New("sort: insertion threshold must be at least 2")
)

const (
	// DefaultInsertionThreshold is the span length below which the hybrid
	// sorter prefers insertion sort over partitioning, and the block width
	// pre-sorted by the stable merge path. 32 keeps spans within a few
	// cache lines while the O(n²) constant of insertion sort stays cheap.
	DefaultInsertionThreshold = 32

	// MinInsertionThreshold is the smallest accepted insertion threshold.
	// Width-1 blocks would make the merge pre-pass loop in place, so the
	// floor is 2: every block sorts at least one pair.
	MinInsertionThreshold = 2

	// maxNetworkLen is the longest span handled by the fixed
	// compare-exchange networks in network.go.
	maxNetworkLen = 5

	// minStackDepth is the smallest initial capacity of the quicksort span
	// stack, used when the logarithmic estimate comes out lower.
	minStackDepth = 2

	// stackSlackFactor pads the log₂(n) stack-depth estimate: uneven
	// median-of-three splits make real depth exceed the balanced-tree
	// bound, and 1.3·log₂(n) covers the common overshoot without
	// reallocation.
	stackSlackFactor = 1.3
)

// Less reports whether a must be ordered before b. It is the single
// comparator shape used across the package.
//
// Less must implement a strict weak ordering:
//
//	– irreflexive: Less(a, a) == false
//	– asymmetric:  Less(a, b) implies !Less(b, a)
//	– transitive:  Less(a, b) && Less(b, c) implies Less(a, c)
//
// Equality is expressed by !Less(a, b) && !Less(b, a). The engine treats
// such elements as interchangeable (or order-preserving on the stable
// path) and never calls Less on elements outside the slice.
type Less[E any] func(a, b E) bool

// Options configures the behavior of the sorting dispatcher.
//
// Stable             – if true, route to the stable merge path (equal
//
//	elements keep their input order) at the cost of an
//	O(n) scratch allocation.
//
// InsertionThreshold – span length below which insertion sort is used, and
//
//	the block width of the stable merge pre-pass.
//	Must be ≥ MinInsertionThreshold.
type Options struct {
	Stable             bool // Whether the stable merge path is requested.
	InsertionThreshold int  // Small-span cutover; also the merge block width.
}

// Option represents a functional option for configuring a sort call.
type Option func(*Options)

// WithStable routes the call through the stable merge sorter. Equal
// elements retain their relative input order; the call allocates one
// scratch slot per element (released when the call returns).
func WithStable() Option {
	return func(o *Options) {
		o.Stable = true
	}
}

// WithInsertionThreshold overrides the span length below which the
// dispatcher and quicksort switch to insertion sort; the same value is the
// block width of the stable merge pre-pass.
//
// Must pass a value ≥ MinInsertionThreshold; smaller values cause a panic
// with ErrBadThreshold's message.
// Default (if not set) is DefaultInsertionThreshold.
func WithInsertionThreshold(threshold int) Option {
	return func(o *Options) {
		if threshold < MinInsertionThreshold {
			// Panic to signal invalid configuration early.
			panic(ErrBadThreshold.Error())
		}
		o.InsertionThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Stable:             false (hybrid unstable path).
//   - InsertionThreshold: DefaultInsertionThreshold.
func DefaultOptions() Options {
	return Options{
		Stable:             false,
		InsertionThreshold: DefaultInsertionThreshold,
	}
}

// NewSortOptions resolves functional options against the documented
// defaults, last writer wins. The entry points resolve their options
// internally; this helper exists for callers that want to inspect or log
// the effective configuration.
func NewSortOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions folds the supplied functional options over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}
