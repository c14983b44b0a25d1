// Package utils implements generic helper functions shared across the
// module.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// MinSlice returns the smallest value in s, or the zero value of V if s
// is empty.
func MinSlice[V constraints.Ordered](s []V) (r V) {
	if len(s) == 0 {
		return
	}

	r = s[0]
	for _, v := range s[1:] {
		if v < r {
			r = v
		}
	}

	return
}

// MaxSlice returns the largest value in s, or the zero value of V if s
// is empty.
func MaxSlice[V constraints.Ordered](s []V) (r V) {
	if len(s) == 0 {
		return
	}

	r = s[0]
	for _, v := range s[1:] {
		if v > r {
			r = v
		}
	}

	return
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[V constraints.Ordered](s []V) bool {
	return sort.SliceIsSorted(s, func(i, j int) bool { return s[i] < s[j] })
}

// SortSlice sorts a slice in ascending order.
func SortSlice[V constraints.Ordered](s []V) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
