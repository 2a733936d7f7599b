// Package lvlseq is your in-memory playground for ordering sequences:
// from tiny fixed sorting networks to hybrid quicksort, stable merges
// and quickselect rank queries.
//
// 🚀 What is lvlseq?
//
//	A modern, dependency-light library that brings together:
//		• Hybrid sorting: fixed networks (2–5), insertion sort, iterative
//		  median-of-three quicksort with duplicate-run detection
//		• Stable sorting: bottom-up block merge with a single O(n) buffer
//		• Order statistics: PartitionByRank, KSmallest, KLargest
//		• Primitives: InsertionSort, HeapSort, MergeSort, IsSorted
//
// ✨ Why choose lvlseq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – no randomization, reproducible run for run
//   - Pure Go – generic over element types, comparator-driven
//   - Predictable small-span cost – input-independent comparison counts
//
// Under the hood, everything is organized under one subpackage:
//
//	sort/ – the sorting and order-statistics engine
//
// Quick example:
//
//	nums := []int{5, 2, 9, 1, 5, 6}
//	sort.Sort(nums) // [1 2 5 5 6 9]
//
// Dive into examples/ for runnable, real-world scenarios.
//
//	go get github.com/katalvlaran/lvlseq/sort
package lvlseq
