package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutations_Empty(t *testing.T) {
	perms := Permutations([]int64{})
	require.Len(t, perms, 1)
	assert.Empty(t, perms[0])
}

func TestPermutations_Single(t *testing.T) {
	perms := Permutations([]int64{7})
	assert.Equal(t, [][]int64{{7}}, perms)
}

func TestPermutations_Three(t *testing.T) {
	perms := Permutations([]int64{0, 1, 2})
	require.Len(t, perms, 6)
	// Every permutation is distinct and a reordering of the input
	seen := make(map[[3]int64]bool)
	//
	for _, perm := range perms {
		require.Len(t, perm, 3)
		assert.ElementsMatch(t, []int64{0, 1, 2}, perm)
		seen[[3]int64{perm[0], perm[1], perm[2]}] = true
	}
	//
	assert.Len(t, seen, 6)
}

func TestPermutations_DoesNotAliasInput(t *testing.T) {
	input := []int64{1, 2}
	perms := Permutations(input)
	perms[0][0] = 99
	assert.Equal(t, []int64{1, 2}, input)
}
