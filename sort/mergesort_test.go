// SPDX-License-Identifier: MIT

package sort_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlseq/sort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeSort_Basic sorts random slices through the caller-scratch entry
// point across the block-width regimes.
func TestMergeSort_Basic(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for _, n := range []int{2, 3, 31, 32, 100, 777} {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(60)
		}
		before := counts(data)
		scratch := make([]int, n)

		require.NoError(t, sort.MergeSort(data, scratch))
		assert.True(t, sort.IsSorted(data), "n=%d", n)
		assert.Equal(t, before, counts(data), "n=%d", n)
	}
}

// TestMergeSortFunc_Stability verifies the tie rule end to end on a slice
// large enough to require several merge rounds: equal keys must keep their
// input order because merges always prefer the left run.
func TestMergeSortFunc_Stability(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	data := make([]record, 640)
	for i := range data {
		data[i] = record{key: rng.Intn(6), ord: i}
	}
	scratch := make([]record, len(data))

	require.NoError(t, sort.MergeSortFunc(data, byKey, scratch))

	for i := 1; i < len(data); i++ {
		require.False(t, byKey(data[i], data[i-1]), "keys must ascend at %d", i)
		if data[i].key == data[i-1].key {
			assert.Less(t, data[i-1].ord, data[i].ord, "equal keys must keep input order at %d", i)
		}
	}
}

// TestMergeSort_ShortScratch verifies the buffer contract: a scratch
// shorter than the data fails fast with ErrShortScratch and the data slice
// is left untouched.
func TestMergeSort_ShortScratch(t *testing.T) {
	data := []int{4, 2, 7, 1}
	original := []int{4, 2, 7, 1}
	scratch := make([]int, len(data)-1)

	err := sort.MergeSort(data, scratch)
	assert.ErrorIs(t, err, sort.ErrShortScratch)
	assert.Equal(t, original, data, "failed call must not move elements")

	err = sort.MergeSort(data, nil)
	assert.ErrorIs(t, err, sort.ErrShortScratch)
	assert.Equal(t, original, data)
}

// TestMergeSort_TrivialLengthsIgnoreScratch verifies that lengths 0 and 1
// succeed without any buffer at all, since there is nothing to merge.
func TestMergeSort_TrivialLengthsIgnoreScratch(t *testing.T) {
	assert.NoError(t, sort.MergeSort([]int{}, nil))

	single := []int{5}
	assert.NoError(t, sort.MergeSort(single, nil))
	assert.Equal(t, []int{5}, single)
}

// TestMergeSort_ScratchReuse sorts several slices through one shared
// buffer, the allocation-free pattern the entry point exists for.
func TestMergeSort_ScratchReuse(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	scratch := make([]int, 256)
	for round := 0; round < 5; round++ {
		n := 64 + rng.Intn(192)
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(40)
		}
		before := counts(data)

		require.NoError(t, sort.MergeSort(data, scratch))
		assert.True(t, sort.IsSorted(data), "round %d", round)
		assert.Equal(t, before, counts(data), "round %d", round)
	}
}

// TestMergeSortFunc_BlockWidthOption checks that the block-width knob
// shifts work between the pre-pass and the merge rounds without changing
// the result.
func TestMergeSortFunc_BlockWidthOption(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	base := make([]int, 90)
	for i := range base {
		base[i] = rng.Intn(25)
	}

	narrow := make([]int, len(base))
	copy(narrow, base)
	wide := make([]int, len(base))
	copy(wide, base)
	scratch := make([]int, len(base))

	// Width 2: nearly pure merging.
	require.NoError(t, sort.MergeSort(narrow, scratch, sort.WithInsertionThreshold(2)))
	// Width beyond n: a single insertion pass, no merge rounds.
	require.NoError(t, sort.MergeSort(wide, scratch, sort.WithInsertionThreshold(128)))

	assert.Equal(t, narrow, wide, "block width must not change the sorted result")
	assert.True(t, sort.IsSorted(narrow))
}

// TestMergeSortFunc_NilComparator verifies the sentinel for a missing
// comparator.
func TestMergeSortFunc_NilComparator(t *testing.T) {
	err := sort.MergeSortFunc([]int{2, 1}, nil, make([]int, 2))
	assert.ErrorIs(t, err, sort.ErrNilComparator)
}
