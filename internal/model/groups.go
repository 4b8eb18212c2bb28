package model

// Groups maps group names to ordered version entries. Group names keep their
// insertion order. Reading a group that does not exist yields an empty
// sequence.
type Groups struct {
	names   []string
	entries map[string][]VersionEntry
}

// NewGroups returns an empty mapping.
func NewGroups() *Groups {
	return &Groups{entries: make(map[string][]VersionEntry)}
}

// GroupsFromRecords builds a mapping from records. A repeated name replaces the
// entries of the earlier record but keeps its position.
func GroupsFromRecords(records []GroupRecord) *Groups {
	g := NewGroups()
	for _, r := range records {
		g.Set(r.Name, r.Entries)
	}
	return g
}

// Records returns the mapping in group order.
func (g *Groups) Records() []GroupRecord {
	records := make([]GroupRecord, 0, len(g.names))
	for _, name := range g.names {
		records = append(records, GroupRecord{Name: name, Entries: g.Entries(name)})
	}
	return records
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.names)
}

// Names returns the group names in order.
func (g *Groups) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Has reports whether the group exists.
func (g *Groups) Has(name string) bool {
	_, ok := g.entries[name]
	return ok
}

// Entries returns a copy of the group's entries.
func (g *Groups) Entries(name string) []VersionEntry {
	src := g.entries[name]
	out := make([]VersionEntry, len(src))
	copy(out, src)
	return out
}

// Paths returns the paths of every entry in the group, in order.
func (g *Groups) Paths(name string) []string {
	src := g.entries[name]
	out := make([]string, 0, len(src))
	for _, e := range src {
		out = append(out, e.Path)
	}
	return out
}

// Add creates an empty group. It returns false if the group already exists.
func (g *Groups) Add(name string) bool {
	if g.Has(name) {
		return false
	}
	g.names = append(g.names, name)
	g.entries[name] = []VersionEntry{}
	return true
}

// Remove deletes a group. It returns false if the group did not exist.
func (g *Groups) Remove(name string) bool {
	if !g.Has(name) {
		return false
	}
	delete(g.entries, name)
	for i, n := range g.names {
		if n == name {
			g.names = append(g.names[:i], g.names[i+1:]...)
			break
		}
	}
	return true
}

// Set replaces the entries of a group, creating it if needed.
func (g *Groups) Set(name string, entries []VersionEntry) {
	g.Add(name)
	cp := make([]VersionEntry, len(entries))
	copy(cp, entries)
	g.entries[name] = cp
}

// Append adds an entry at the end of a group, creating the group if needed.
func (g *Groups) Append(name string, e VersionEntry) {
	g.Add(name)
	g.entries[name] = append(g.entries[name], e)
}

// Update replaces the entry at index i.
func (g *Groups) Update(name string, i int, e VersionEntry) bool {
	list := g.entries[name]
	if i < 0 || i >= len(list) {
		return false
	}
	list[i] = e
	return true
}

// RemoveAt deletes the entry at index i.
func (g *Groups) RemoveAt(name string, i int) bool {
	list := g.entries[name]
	if i < 0 || i >= len(list) {
		return false
	}
	g.entries[name] = append(list[:i], list[i+1:]...)
	return true
}

// Swap exchanges two entries of a group.
func (g *Groups) Swap(name string, i, j int) bool {
	list := g.entries[name]
	if i < 0 || j < 0 || i >= len(list) || j >= len(list) {
		return false
	}
	list[i], list[j] = list[j], list[i]
	return true
}
