package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroups_MissingGroupIsEmpty(t *testing.T) {
	g := NewGroups()

	assert.False(t, g.Has("Python"))
	assert.Empty(t, g.Entries("Python"))
	assert.Empty(t, g.Paths("Python"))
	assert.False(t, g.RemoveAt("Python", 0))
	assert.False(t, g.Remove("Python"))
}

func TestGroups_KeepsInsertionOrder(t *testing.T) {
	g := NewGroups()
	require.True(t, g.Add("Python"))
	require.True(t, g.Add("Java"))
	require.True(t, g.Add("Node"))
	assert.False(t, g.Add("Java"), "adding an existing group is a no-op")

	assert.Equal(t, []string{"Python", "Java", "Node"}, g.Names())

	g.Remove("Java")
	assert.Equal(t, []string{"Python", "Node"}, g.Names())
	assert.Equal(t, 2, g.Len())
}

func TestGroups_EntryEditing(t *testing.T) {
	g := NewGroups()
	g.Append("Python", VersionEntry{Path: `C:\Py311`, Alias: "3.11"})
	g.Append("Python", VersionEntry{Path: `C:\Py312`, Alias: "3.12"})
	g.Append("Python", VersionEntry{Path: `C:\Py313`, Alias: "3.13"})

	require.True(t, g.Swap("Python", 0, 1))
	assert.Equal(t, []string{`C:\Py312`, `C:\Py311`, `C:\Py313`}, g.Paths("Python"))

	require.True(t, g.Update("Python", 2, VersionEntry{Path: `D:\Py313`, Alias: "3.13"}))
	require.True(t, g.RemoveAt("Python", 0))
	assert.Equal(t, []string{`C:\Py311`, `D:\Py313`}, g.Paths("Python"))

	assert.False(t, g.Swap("Python", 0, 5))
	assert.False(t, g.Update("Python", -1, VersionEntry{}))
}

func TestGroups_EntriesReturnsCopy(t *testing.T) {
	g := NewGroups()
	g.Append("Go", VersionEntry{Path: "/usr/local/go1.22/bin", Alias: "1.22"})

	entries := g.Entries("Go")
	entries[0].Alias = "changed"

	assert.Equal(t, "1.22", g.Entries("Go")[0].Alias)
}

func TestGroups_Records(t *testing.T) {
	records := []GroupRecord{
		{Name: "b", Entries: []VersionEntry{{Path: "/b1", Alias: "one"}}},
		{Name: "a", Entries: nil},
		{Name: "b", Entries: []VersionEntry{{Path: "/b2", Alias: "two"}}},
	}

	g := GroupsFromRecords(records)

	assert.Equal(t, []string{"b", "a"}, g.Names())
	assert.Equal(t, []string{"/b2"}, g.Paths("b"))
	assert.Equal(t, []GroupRecord{
		{Name: "b", Entries: []VersionEntry{{Path: "/b2", Alias: "two"}}},
		{Name: "a", Entries: []VersionEntry{}},
	}, g.Records())
}
