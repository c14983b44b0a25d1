package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMaxSlice(t *testing.T) {
	s := []float64{3, -1, 2.5, 7, 0}
	require.Equal(t, float64(-1), MinSlice(s))
	require.Equal(t, float64(7), MaxSlice(s))

	require.Equal(t, 0, MinSlice([]int(nil)))
	require.Equal(t, 0, MaxSlice([]int(nil)))
}

func TestIsSorted(t *testing.T) {
	require.True(t, IsSorted([]int{1, 2, 2, 3}))
	require.False(t, IsSorted([]int{1, 3, 2}))
	require.True(t, IsSorted([]float64{}))
}

func TestSortSlice(t *testing.T) {
	s := []int{3, 1, 2}
	SortSlice(s)
	require.Equal(t, []int{1, 2, 3}, s)
}
