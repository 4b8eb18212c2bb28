package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathswitch/internal/errors"
	"pathswitch/internal/model"
)

func TestAddGroup(t *testing.T) {
	f := newFixture(t, "")

	require.NoError(t, f.svc.AddGroup(" Java "))
	assert.Equal(t, []string{"Java"}, f.svc.GroupNames())
	assert.Equal(t, "Java", f.svc.SelectedGroup())

	assert.True(t, errors.IsErrorCode(f.svc.AddGroup("Java"), errors.ErrExists))
	assert.True(t, errors.IsErrorCode(f.svc.AddGroup("  "), errors.ErrInvalidInput))
}

func TestRemoveGroup_SelectsFirstRemaining(t *testing.T) {
	f := newFixture(t, `C:\jdk8\bin`)
	require.NoError(t, f.svc.AddGroup("Java"))
	require.NoError(t, f.svc.AddGroup("Python"))
	require.NoError(t, f.svc.SelectGroup("Python"))

	require.NoError(t, f.svc.RemoveGroup("Python"))
	assert.Equal(t, "Java", f.svc.SelectedGroup())

	require.NoError(t, f.svc.RemoveGroup("Java"))
	assert.Empty(t, f.svc.SelectedGroup())
	assert.True(t, errors.IsErrorCode(f.svc.RemoveGroup("Java"), errors.ErrNotFound))
	assert.Equal(t, 0, f.store.Writes())
}

func TestGroupEditFailuresSetStatus(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.svc.AddGroup("Java"))
	assert.Equal(t, StatusReady, f.svc.Status())

	require.Error(t, f.svc.AddGroup("Java"))
	assert.Equal(t, `Error: group "Java" already exists`, f.svc.Status())

	require.Error(t, f.svc.AddEntry("Java", "", "x"))
	assert.Equal(t, "Error: path must not be empty", f.svc.Status())

	require.Error(t, f.svc.RemoveEntry("Java", 3))
	assert.Equal(t, `Error: group "Java" has no entry 3`, f.svc.Status())
}

func TestSelectGroup_Unknown(t *testing.T) {
	f := newFixture(t, "")
	assert.True(t, errors.IsErrorCode(f.svc.SelectGroup("Go"), errors.ErrNotFound))
}

func TestAddEntry(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.svc.AddGroup("Node"))

	require.NoError(t, f.svc.AddEntry("Node", `C:\node18`, ""))
	assert.Equal(t, []model.VersionEntry{{Path: `C:\node18`, Alias: model.DefaultAlias}}, f.svc.Entries("Node"))

	assert.True(t, errors.IsErrorCode(f.svc.AddEntry("Node", "", "x"), errors.ErrInvalidInput))
	assert.True(t, errors.IsErrorCode(f.svc.AddEntry("Deno", `C:\deno`, "x"), errors.ErrNotFound))
}

func TestUpdateAndRemoveEntry(t *testing.T) {
	f := newFixture(t, "")
	addJava(t, f.svc)

	require.NoError(t, f.svc.UpdateEntry("Java", 0, `C:\jdk11\bin`, "JDK 11"))
	assert.Equal(t, "JDK 11", f.svc.Entries("Java")[0].Alias)
	assert.True(t, errors.IsErrorCode(f.svc.UpdateEntry("Java", 9, `C:\x`, "x"), errors.ErrNotFound))
	assert.True(t, errors.IsErrorCode(f.svc.UpdateEntry("Java", 0, "", "x"), errors.ErrInvalidInput))

	require.NoError(t, f.svc.RemoveEntry("Java", 0))
	assert.Equal(t, []model.VersionEntry{{Path: `C:\jdk17\bin`, Alias: "JDK 17"}}, f.svc.Entries("Java"))
	assert.True(t, errors.IsErrorCode(f.svc.RemoveEntry("Java", 1), errors.ErrNotFound))
}

func TestMoveEntry(t *testing.T) {
	f := newFixture(t, "")
	addJava(t, f.svc)

	require.NoError(t, f.svc.MoveEntryDown("Java", 0))
	assert.Equal(t, "JDK 17", f.svc.Entries("Java")[0].Alias)

	// Already at the edges.
	require.NoError(t, f.svc.MoveEntryDown("Java", 1))
	require.NoError(t, f.svc.MoveEntryUp("Java", 0))
	assert.Equal(t, "JDK 17", f.svc.Entries("Java")[0].Alias)

	require.NoError(t, f.svc.MoveEntryUp("Java", 1))
	assert.Equal(t, "JDK 8", f.svc.Entries("Java")[0].Alias)

	assert.True(t, errors.IsErrorCode(f.svc.MoveEntryUp("Java", 4), errors.ErrNotFound))
}

func TestGroups_ReturnsCopy(t *testing.T) {
	f := newFixture(t, "")
	addJava(t, f.svc)

	g := f.svc.Groups()
	g.Remove("Java")
	assert.Equal(t, []string{"Java"}, f.svc.GroupNames())
}

func TestGroupEntries(t *testing.T) {
	f := newFixture(t, `C:\Windows;c:\JDK17\bin`, `C:\jdk8\bin`)
	addJava(t, f.svc)

	views := f.svc.GroupEntries("Java")
	require.Len(t, views, 2)
	assert.False(t, views[0].Active)
	assert.True(t, views[0].Exists)
	assert.True(t, views[1].Active)
	assert.False(t, views[1].Exists)
	assert.Empty(t, f.svc.GroupEntries("Go"))
}
