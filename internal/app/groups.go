package app

import (
	"strings"

	"pathswitch/internal/errors"
	"pathswitch/internal/model"
	"pathswitch/internal/switcher"
)

// GroupNames returns the group names in order.
func (s *Service) GroupNames() []string {
	return s.state.Groups.Names()
}

// Groups returns a copy of the group mapping.
func (s *Service) Groups() *model.Groups {
	return model.GroupsFromRecords(s.state.Groups.Records())
}

// Entries returns the entries of group; an unknown group has none.
func (s *Service) Entries(group string) []model.VersionEntry {
	return s.state.Groups.Entries(group)
}

// SelectedGroup returns the group the UI is working on.
func (s *Service) SelectedGroup() string {
	return s.state.SelectedGroup
}

// SelectGroup makes name the working group. Failed edits, here and below,
// set the error status.
func (s *Service) SelectGroup(name string) error {
	if !s.state.Groups.Has(name) {
		return s.fail(errors.Newf(errors.ErrNotFound, "group %q not found", name))
	}
	s.state.SelectedGroup = name
	s.save()
	return nil
}

// AddGroup creates an empty group and selects it.
func (s *Service) AddGroup(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.fail(errors.New(errors.ErrInvalidInput, "group name must not be empty"))
	}
	if !s.state.Groups.Add(name) {
		return s.fail(errors.Newf(errors.ErrExists, "group %q already exists", name))
	}
	s.state.SelectedGroup = name
	s.save()
	return nil
}

// RemoveGroup deletes a group. The PATH value is not touched.
func (s *Service) RemoveGroup(name string) error {
	if !s.state.Groups.Remove(name) {
		return s.fail(errors.Newf(errors.ErrNotFound, "group %q not found", name))
	}
	if s.state.SelectedGroup == name {
		s.state.SelectedGroup = ""
		if names := s.state.Groups.Names(); len(names) > 0 {
			s.state.SelectedGroup = names[0]
		}
	}
	s.save()
	return nil
}

// AddEntry appends an entry to an existing group. An empty alias becomes
// model.DefaultAlias. The path does not have to exist.
func (s *Service) AddEntry(group, path, alias string) error {
	if !s.state.Groups.Has(group) {
		return s.fail(errors.Newf(errors.ErrNotFound, "group %q not found", group))
	}
	if path == "" {
		return s.fail(errors.New(errors.ErrInvalidInput, "path must not be empty"))
	}
	if alias == "" {
		alias = model.DefaultAlias
	}
	s.state.Groups.Append(group, model.VersionEntry{Path: path, Alias: alias})
	s.save()
	return nil
}

// UpdateEntry replaces the path and alias of entry index.
func (s *Service) UpdateEntry(group string, index int, path, alias string) error {
	if path == "" {
		return s.fail(errors.New(errors.ErrInvalidInput, "path must not be empty"))
	}
	if alias == "" {
		alias = model.DefaultAlias
	}
	if !s.state.Groups.Update(group, index, model.VersionEntry{Path: path, Alias: alias}) {
		return s.fail(entryNotFound(group, index))
	}
	s.save()
	return nil
}

func (s *Service) RemoveEntry(group string, index int) error {
	if !s.state.Groups.RemoveAt(group, index) {
		return s.fail(entryNotFound(group, index))
	}
	s.save()
	return nil
}

// MoveEntryUp swaps entry index with the one before it. Moving the first
// entry up is a no-op.
func (s *Service) MoveEntryUp(group string, index int) error {
	return s.move(group, index, index-1)
}

// MoveEntryDown swaps entry index with the one after it. Moving the last
// entry down is a no-op.
func (s *Service) MoveEntryDown(group string, index int) error {
	return s.move(group, index, index+1)
}

func (s *Service) move(group string, from, to int) error {
	n := len(s.state.Groups.Entries(group))
	if from < 0 || from >= n {
		return s.fail(entryNotFound(group, from))
	}
	if to < 0 || to >= n {
		return nil
	}
	s.state.Groups.Swap(group, from, to)
	s.save()
	return nil
}

func entryNotFound(group string, index int) *errors.Error {
	return errors.Newf(errors.ErrNotFound, "group %q has no entry %d", group, index)
}

// EntryView is a version entry annotated against a fresh PATH read.
type EntryView struct {
	model.VersionEntry
	Active bool `json:"active"`
	Exists bool `json:"exists"`
}

// GroupEntries returns the entries of group with their active and exists
// flags. An entry is active when its path is anywhere on the PATH.
func (s *Service) GroupEntries(group string) []EntryView {
	current := s.CurrentPath()
	entries := s.state.Groups.Entries(group)
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, EntryView{
			VersionEntry: e,
			Active:       switcher.IsActive(current, e.Path),
			Exists:       s.cleaner.Exists(e.Path),
		})
	}
	return views
}
