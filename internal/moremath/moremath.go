// Package moremath holds small numeric helpers the standard "math" package
// doesn't provide over generic number types.
package moremath

import "golang.org/x/exp/constraints"

// Number is any signed integer or floating point type.
type Number interface {
	constraints.Signed | constraints.Float
}

// Sign returns -1, 1, or 0 if n is less than, greater than, or equal to 0
// respectively. A NaN compares false both ways, so its sign is 0.
func Sign[T Number](n T) T {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

// Min returns the smallest value from its arguments; panics if called with no
// args. NaN arguments are skipped unless every argument is NaN.
func Min[T constraints.Ordered](ns ...T) T {
	m := ns[0]
	for i := 1; i < len(ns); i++ {
		if n := ns[i]; n < m || m != m {
			m = n
		}
	}
	return m
}

// Max returns the largest value from its arguments; panics if called with no
// args. NaN arguments are skipped unless every argument is NaN.
func Max[T constraints.Ordered](ns ...T) T {
	m := ns[0]
	for i := 1; i < len(ns); i++ {
		if n := ns[i]; n > m || m != m {
			m = n
		}
	}
	return m
}
