package utils

// Map applies fn to every element of src and returns the results. A nil or
// empty src returns an empty (non nil) slice, so JSON renders [] not null.
func Map[T any, U any](src []T, fn func(T) U) []U {
	dst := make([]U, len(src))
	for i, item := range src {
		dst[i] = fn(item)
	}
	return dst
}
