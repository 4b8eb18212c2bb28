// Package switcher computes the PATH value that makes one entry of a group
// the active one.
package switcher

import "pathswitch/internal/pathlist"

// Activate removes from current every entry that matches a managed path
// (ASCII case-insensitive, no other normalization) and puts target first.
//
// managed is every path registered under the group being switched, not only
// target. Entries equal to target that the group does not manage are kept.
func Activate(current, managed []string, target string) []string {
	drop := make(map[string]struct{}, len(managed))
	for _, m := range managed {
		drop[pathlist.Key(m)] = struct{}{}
	}

	out := make([]string, 0, len(current)+1)
	out = append(out, target)
	for _, p := range current {
		if _, ok := drop[pathlist.Key(p)]; ok {
			continue
		}
		out = append(out, p)
	}
	return out
}

// IsActive reports whether path appears in current.
func IsActive(current []string, path string) bool {
	for _, p := range current {
		if pathlist.EqualFold(p, path) {
			return true
		}
	}
	return false
}

// ActiveIndex returns the index of the first entry of paths that appears in
// current, or -1.
func ActiveIndex(current, paths []string) int {
	for i, p := range paths {
		if IsActive(current, p) {
			return i
		}
	}
	return -1
}
