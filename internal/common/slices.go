package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// Reversed returns a new slice with the elements in reverse order. The input
// is never mutated.
func Reversed[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	for i, e := range s {
		out[len(s)-1-i] = e
	}

	return out
}
