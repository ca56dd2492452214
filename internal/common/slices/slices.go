package slices

import (
	"golang.org/x/exp/constraints"
)

// Map returns the slice obtained by applying f to each element of s.
func Map[S ~[]E, E any, V any](s S, f func(E) V) []V {
	if s == nil {
		return nil
	}
	rv := make([]V, len(s))
	for i, e := range s {
		rv[i] = f(e)
	}
	return rv
}

// Filter returns a new slice containing the elements of s for which predicate is true,
// preserving their relative order.
func Filter[S ~[]E, E any](s S, predicate func(E) bool) S {
	if s == nil {
		return nil
	}
	rv := make(S, 0, len(s))
	for _, e := range s {
		if predicate(e) {
			rv = append(rv, e)
		}
	}
	return rv
}

// Sum returns the sum of the elements of s.
func Sum[S ~[]E, E constraints.Integer | constraints.Float](s S) E {
	var sum E
	for _, e := range s {
		sum += e
	}
	return sum
}
