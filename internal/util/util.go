package util

// Pointer simply returns a pointer to the supplied value
func Pointer[T any](v T) *T {
	return &v
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
