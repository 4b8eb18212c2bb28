package model

import (
	"fmt"
	"strings"
)

// VersionEntry is a user-named path that belongs to a group.
type VersionEntry struct {
	Path  string `json:"path" yaml:"path" toml:"path"`   // Directory put on the PATH when activated
	Alias string `json:"alias" yaml:"alias" toml:"alias"` // Display name (e.g. "Python 3.12")
}

// DefaultAlias is used when an entry is added without a name.
const DefaultAlias = "Unnamed"

// IssueKind classifies a problem found in the PATH value.
type IssueKind int

const (
	IssueMissing IssueKind = iota
	IssueDuplicate
)

func (k IssueKind) String() string {
	switch k {
	case IssueMissing:
		return "Missing"
	case IssueDuplicate:
		return "Duplicate"
	default:
		return fmt.Sprintf("IssueKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name so JSON clients see "Missing"/"Duplicate".
func (k IssueKind) MarshalText() ([]byte, error) {
	switch k {
	case IssueMissing, IssueDuplicate:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("unknown issue kind %d", int(k))
}

func (k *IssueKind) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "missing":
		*k = IssueMissing
	case "duplicate":
		*k = IssueDuplicate
	default:
		return fmt.Errorf("unknown issue kind %q", string(b))
	}
	return nil
}

// Issue is a diagnosed problem in the PATH value. It is regenerated on every
// scan and never matched back to a VersionEntry.
type Issue struct {
	Path     string    `json:"path"`
	Kind     IssueKind `json:"kind"`
	Selected bool      `json:"selected"`
}

// PathEntry is one element of the PATH value as shown to the user.
type PathEntry struct {
	Index  int    `json:"index"`
	Value  string `json:"value"`
	Exists bool   `json:"exists"`
	Group  string `json:"group,omitempty"` // Group that manages this path, if any
	Alias  string `json:"alias,omitempty"`
}

// GroupRecord is the serializable form of a single group.
type GroupRecord struct {
	Name    string         `json:"name" toml:"name"`
	Entries []VersionEntry `json:"entries" toml:"entries"`
}

// WhichMatch is a PATH directory holding a file whose name starts with a
// queried command name.
type WhichMatch struct {
	Index int    `json:"index"`
	Dir   string `json:"dir"`
	File  string `json:"file"`
}
