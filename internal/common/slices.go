package common

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Truncate returns at most n leading elements of s.
func Truncate[S ~[]E, E any](s S, n int) S {
	if n < 0 || len(s) <= n {
		return s
	}

	return s[:n]
}
