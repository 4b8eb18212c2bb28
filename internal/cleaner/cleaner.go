// Package cleaner finds missing and duplicate entries in the PATH value and
// removes the ones the user selected.
package cleaner

import (
	"strings"

	"github.com/spf13/afero"

	"pathswitch/internal/model"
)

// Cleaner checks entries against a filesystem.
type Cleaner struct {
	fs afero.Fs
}

// New returns a Cleaner that checks existence on fs.
func New(fs afero.Fs) *Cleaner {
	return &Cleaner{fs: fs}
}

// NewOS returns a Cleaner backed by the real filesystem.
func NewOS() *Cleaner {
	return New(afero.NewOsFs())
}

// Exists reports whether any filesystem entry lives at p.
func (c *Cleaner) Exists(p string) bool {
	_, err := c.fs.Stat(p)
	return err == nil
}

// Scan walks current in order and reports problems. A repeat of an earlier
// entry (case-insensitive) is a Duplicate, otherwise an entry that does not
// exist is Missing. An entry is reported at most once; Duplicate wins.
// Every issue starts selected.
func (c *Cleaner) Scan(current []string) []model.Issue {
	var issues []model.Issue
	seen := make(map[string]struct{}, len(current))

	for _, p := range current {
		key := strings.ToLower(p)
		if _, ok := seen[key]; ok {
			issues = append(issues, model.Issue{Path: p, Kind: model.IssueDuplicate, Selected: true})
			continue
		}
		seen[key] = struct{}{}
		if !c.Exists(p) {
			issues = append(issues, model.Issue{Path: p, Kind: model.IssueMissing, Selected: true})
		}
	}
	return issues
}

// Clean drops the occurrences covered by the selected issues and returns the
// remaining entries with the number removed. Every occurrence of a selected
// Missing path is dropped. For a selected Duplicate path the first
// occurrence is kept and later ones are dropped. A count of zero means
// nothing changed.
func Clean(current []string, issues []model.Issue) ([]string, int) {
	missing := make(map[string]struct{})
	dupes := make(map[string]struct{})
	for _, is := range issues {
		if !is.Selected {
			continue
		}
		switch is.Kind {
		case model.IssueMissing:
			missing[strings.ToLower(is.Path)] = struct{}{}
		case model.IssueDuplicate:
			dupes[strings.ToLower(is.Path)] = struct{}{}
		}
	}

	out := make([]string, 0, len(current))
	seen := make(map[string]struct{}, len(current))
	removed := 0

	for _, p := range current {
		key := strings.ToLower(p)
		if _, ok := missing[key]; ok {
			removed++
			continue
		}
		if _, ok := dupes[key]; ok {
			if _, dup := seen[key]; dup {
				removed++
				continue
			}
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out, removed
}

// Counts returns how many issues of each kind are in issues.
func Counts(issues []model.Issue) (missing, duplicate int) {
	for _, is := range issues {
		switch is.Kind {
		case model.IssueMissing:
			missing++
		case model.IssueDuplicate:
			duplicate++
		}
	}
	return missing, duplicate
}
