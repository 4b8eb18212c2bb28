package state

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathswitch/internal/errors"
	"pathswitch/internal/model"
)

func TestLoad_MissingFile(t *testing.T) {
	s, err := NewFile(afero.NewMemMapFs(), "/data/state.toml").Load()

	require.NoError(t, err)
	assert.Zero(t, s.Groups.Len())
	assert.Zero(t, s.History.Len())
	assert.Empty(t, s.SelectedGroup)
}

func TestSaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := NewFile(fs, "/data/pathswitch/state.toml")

	s := New()
	s.Groups.Append("Python", model.VersionEntry{Path: `C:\Py311`, Alias: "3.11"})
	s.Groups.Append("Python", model.VersionEntry{Path: `C:\Py312`, Alias: "3.12"})
	s.Groups.Add("Java")
	s.Groups.Append("Go", model.VersionEntry{Path: `C:\Go\bin`, Alias: "Go"})
	s.SelectedGroup = "Java"
	s.History.Add(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), "Activated 3.12 (Python)")

	require.NoError(t, f.Save(s))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Java", "Go"}, got.Groups.Names())
	assert.Equal(t, s.Groups.Records(), got.Groups.Records())
	assert.Equal(t, "Java", got.SelectedGroup)
	assert.Equal(t, s.History.Entries(), got.History.Entries())
}

func TestLoad_UnknownSelectedGroupFallsBack(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `selected_group = "Ruby"

[[groups]]
name = "Node"

[[groups.entries]]
path = "C:\\node18"
alias = "18"
`
	require.NoError(t, afero.WriteFile(fs, "/s.toml", []byte(doc), 0o644))

	s, err := NewFile(fs, "/s.toml").Load()
	require.NoError(t, err)
	assert.Equal(t, "Node", s.SelectedGroup)
	assert.Equal(t, []string{`C:\node18`}, s.Groups.Paths("Node"))
}

func TestLoad_Malformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/s.toml", []byte("groups = [ this is not toml"), 0o644))

	_, err := NewFile(fs, "/s.toml").Load()
	assert.True(t, errors.IsErrorCode(err, errors.ErrStateLoad))
}

func TestSave_Failure(t *testing.T) {
	f := NewFile(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data/state.toml")
	err := f.Save(New())
	assert.True(t, errors.IsErrorCode(err, errors.ErrStateSave))
}
