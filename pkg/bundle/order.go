// File: pkg/bundle/order.go
package bundle

import (
	"path/filepath"
	"sort"
)

// Order returns a copy of paths arranged according to mode.
// SortUnspecified keeps the input order.
func Order(paths []string, mode SortMode) []string {
	ordered := make([]string, len(paths))
	copy(ordered, paths)

	switch mode {
	case SortByName:
		sort.Strings(ordered)
	case SortByExtension:
		// Extension only; same-extension files keep their collected order.
		sort.SliceStable(ordered, func(i, j int) bool {
			return filepath.Ext(ordered[i]) < filepath.Ext(ordered[j])
		})
	}
	return ordered
}
