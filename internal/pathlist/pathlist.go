// Package pathlist converts between the persisted PATH value and an ordered
// list of entries.
package pathlist

import "strings"

// Delimiter separates entries in the persisted value. It is a format
// constant, not a platform setting.
const Delimiter = ";"

// Parse splits raw on Delimiter and drops empty segments. Entries are taken
// literally: whitespace is not trimmed.
func Parse(raw string) []string {
	parts := strings.Split(raw, Delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Serialize joins entries with Delimiter. Serialize(Parse(s)) loses any empty
// segments of s.
func Serialize(entries []string) string {
	return strings.Join(entries, Delimiter)
}

// EqualFold reports whether two entries name the same path. Comparison is
// ASCII case-insensitive and does no other normalization.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

// Key returns the form of p used for set membership: ASCII lower case.
func Key(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	for i := 0; i < len(p); i++ {
		b.WriteByte(lowerASCII(p[i]))
	}
	return b.String()
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
