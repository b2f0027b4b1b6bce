package utils

// FindIndex returns the index of the first occurrence of item, -1 if absent.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// RemoveAt returns a new slice without the element at index i.
func RemoveAt[T any](slice []T, i int) []T {
	out := make([]T, 0, len(slice)-1)
	out = append(out, slice[:i]...)
	return append(out, slice[i+1:]...)
}
