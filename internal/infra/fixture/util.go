package fixture

import "sort"

// sortByID keeps list output deterministic between calls.
func sortByID[T any](items []T, key func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return key(items[i]) < key(items[j]) })
}
