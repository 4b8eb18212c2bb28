// Package state persists the groups, the selected group and the activity
// history between runs.
package state

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"pathswitch/internal/errors"
	"pathswitch/internal/model"
)

// State is everything the application remembers between runs. The PATH
// value itself is not part of it.
type State struct {
	Groups        *model.Groups
	SelectedGroup string
	History       *model.History
}

// New returns an empty state.
func New() *State {
	return &State{
		Groups:  model.NewGroups(),
		History: model.NewHistory(nil),
	}
}

// document is the on-disk TOML layout. Groups are an array of tables so
// their order survives a round trip.
type document struct {
	SelectedGroup string               `toml:"selected_group"`
	Groups        []model.GroupRecord  `toml:"groups"`
	History       []model.HistoryEntry `toml:"history"`
}

// File loads and saves State as TOML.
type File struct {
	fs   afero.Fs
	path string
}

func NewFile(fsys afero.Fs, path string) *File {
	return &File{fs: fsys, path: path}
}

func (f *File) Path() string {
	return f.path
}

// Load reads the state. A missing file yields an empty state.
func (f *File) Load() (*State, error) {
	b, err := afero.ReadFile(f.fs, f.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateLoad, "read %s", f.path)
	}

	var doc document
	if err := toml.Unmarshal(b, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateLoad, "parse %s", f.path)
	}

	s := &State{
		Groups:        model.GroupsFromRecords(doc.Groups),
		SelectedGroup: doc.SelectedGroup,
		History:       model.NewHistory(doc.History),
	}
	if !s.Groups.Has(s.SelectedGroup) {
		s.SelectedGroup = firstOrEmpty(s.Groups.Names())
	}
	return s, nil
}

// Save writes the state, creating parent directories.
func (f *File) Save(s *State) error {
	doc := document{
		SelectedGroup: s.SelectedGroup,
		Groups:        s.Groups.Records(),
		History:       s.History.Entries(),
	}
	b, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "encode state")
	}
	if err := f.fs.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "create %s", filepath.Dir(f.path))
	}
	if err := afero.WriteFile(f.fs, f.path, b, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "write %s", f.path)
	}
	return nil
}

func firstOrEmpty(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
