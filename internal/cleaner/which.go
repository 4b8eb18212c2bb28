package cleaner

import (
	"strings"

	"github.com/spf13/afero"

	"pathswitch/internal/model"
)

// Which lists the PATH directories that hold a file named like query, in
// PATH order, so the first match is the one a shell would run. Names match
// case-insensitively by prefix, so "java" finds "java.exe"; an exact name
// wins over a longer one within the same directory. Directories that cannot
// be read are skipped.
func (c *Cleaner) Which(current []string, query string) []model.WhichMatch {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}

	var matches []model.WhichMatch
	seen := make(map[string]bool)
	for i, dir := range current {
		key := strings.ToLower(dir)
		if seen[key] {
			continue
		}
		files, err := afero.ReadDir(c.fs, dir)
		if err != nil {
			continue
		}

		found := ""
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			name := strings.ToLower(f.Name())
			if !strings.HasPrefix(name, query) {
				continue
			}
			if found == "" || name == query {
				found = f.Name()
			}
			if name == query {
				break
			}
		}

		if found != "" {
			seen[key] = true
			matches = append(matches, model.WhichMatch{Index: i, Dir: dir, File: found})
		}
	}
	return matches
}
