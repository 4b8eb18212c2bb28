// Package app is the application layer between the user interfaces and the
// PATH engine. Every operation re-reads the store; the PATH value is never
// cached.
package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"pathswitch/internal/cleaner"
	"pathswitch/internal/errors"
	"pathswitch/internal/logging"
	"pathswitch/internal/model"
	"pathswitch/internal/notify"
	"pathswitch/internal/pathlist"
	"pathswitch/internal/state"
	"pathswitch/internal/store"
	"pathswitch/internal/switcher"
	"pathswitch/internal/transfer"
)

// Status messages shown to the user.
const (
	StatusReady    = "Ready."
	StatusNoIssues = "No issues found."
	StatusImported = "Configuration imported successfully."
	StatusExported = "Configuration exported successfully."
)

// Options holds the collaborators of a Service.
type Options struct {
	Store       store.Store
	Broadcaster store.Broadcaster
	Notifier    notify.Notifier
	Cleaner     *cleaner.Cleaner
	StateFile   *state.File
	// FS is used for import and export.
	FS  afero.Fs
	Now func() time.Time
}

// Service runs user actions. It is not safe for concurrent use.
type Service struct {
	store       store.Store
	broadcaster store.Broadcaster
	notifier    notify.Notifier
	cleaner     *cleaner.Cleaner
	stateFile   *state.File
	fs          afero.Fs
	now         func() time.Time

	state  *state.State
	status string
	log    zerolog.Logger
}

// ActivateResult describes a successful activation.
type ActivateResult struct {
	Group string
	Entry model.VersionEntry
	Path  []string // PATH value after the write
}

// New loads the persisted state and returns a Service.
func New(opts Options) (*Service, error) {
	s := &Service{
		store:       opts.Store,
		broadcaster: opts.Broadcaster,
		notifier:    opts.Notifier,
		cleaner:     opts.Cleaner,
		stateFile:   opts.StateFile,
		fs:          opts.FS,
		now:         opts.Now,
		status:      StatusReady,
		log:         logging.GetLogger("app"),
	}
	if s.broadcaster == nil {
		s.broadcaster = store.NopBroadcaster{}
	}
	if s.notifier == nil {
		s.notifier = notify.Nop{}
	}
	if s.cleaner == nil {
		s.cleaner = cleaner.NewOS()
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.now == nil {
		s.now = time.Now
	}

	if s.stateFile == nil {
		s.state = state.New()
		return s, nil
	}
	st, err := s.stateFile.Load()
	if err != nil {
		return nil, err
	}
	s.state = st
	return s, nil
}

// Status returns the last status message.
func (s *Service) Status() string {
	return s.status
}

// CurrentPath reads the PATH value. A read failure is logged and treated as
// an empty value so the UI stays usable.
func (s *Service) CurrentPath() []string {
	raw, err := s.store.Read()
	if err != nil {
		s.log.Warn().Err(errors.Wrap(err, errors.ErrStoreRead, "read Path")).Msg("Treating PATH as empty")
		return []string{}
	}
	return pathlist.Parse(raw)
}

// PathEntries reads the PATH value and annotates each entry with existence
// and the group that manages it.
func (s *Service) PathEntries() []model.PathEntry {
	current := s.CurrentPath()
	entries := make([]model.PathEntry, 0, len(current))
	for i, p := range current {
		e := model.PathEntry{Index: i, Value: p, Exists: s.cleaner.Exists(p)}
		if group, ve, ok := s.findManaged(p); ok {
			e.Group = group
			e.Alias = ve.Alias
		}
		entries = append(entries, e)
	}
	return entries
}

func (s *Service) findManaged(p string) (string, model.VersionEntry, bool) {
	for _, name := range s.state.Groups.Names() {
		for _, ve := range s.state.Groups.Entries(name) {
			if pathlist.EqualFold(ve.Path, p) {
				return name, ve, true
			}
		}
	}
	return "", model.VersionEntry{}, false
}

// Activate makes entry index of group the active one: every path of the
// group is removed from PATH and the entry's path is put first.
func (s *Service) Activate(group string, index int) (*ActivateResult, error) {
	entries := s.state.Groups.Entries(group)
	if !s.state.Groups.Has(group) {
		return nil, s.fail(errors.Newf(errors.ErrNotFound, "group %q not found", group))
	}
	if index < 0 || index >= len(entries) {
		return nil, s.fail(errors.Newf(errors.ErrNotFound, "group %q has no entry %d", group, index))
	}
	entry := entries[index]

	done := logging.LogOperationStart(s.log, "activate")
	defer done()

	current := s.CurrentPath()
	next := switcher.Activate(current, s.state.Groups.Paths(group), entry.Path)

	if err := s.store.Write(pathlist.Serialize(next)); err != nil {
		return nil, s.fail(errors.Wrap(err, errors.ErrStoreWrite, "write Path"))
	}

	s.broadcast()
	title, body := notify.Activated(entry.Alias)
	if err := s.notifier.Notify(title, body); err != nil {
		s.log.Debug().Err(err).Msg("Notification not shown")
	}

	s.state.History.Add(s.now(), fmt.Sprintf("Activated %s (%s)", entry.Alias, group))
	s.status = fmt.Sprintf("Activated: %s", entry.Path)
	s.log.Info().Str("group", group).Str("alias", entry.Alias).Str("path", entry.Path).Msg("Activated")
	s.save()

	return &ActivateResult{Group: group, Entry: entry, Path: next}, nil
}

// ActivateAlias activates the first entry of group whose alias matches,
// falling back to a case-insensitive path match.
func (s *Service) ActivateAlias(group, aliasOrPath string) (*ActivateResult, error) {
	entries := s.state.Groups.Entries(group)
	for i, e := range entries {
		if e.Alias == aliasOrPath {
			return s.Activate(group, i)
		}
	}
	for i, e := range entries {
		if pathlist.EqualFold(e.Path, aliasOrPath) {
			return s.Activate(group, i)
		}
	}
	return nil, s.fail(errors.Newf(errors.ErrNotFound, "group %q has no entry %q", group, aliasOrPath))
}

// IsActive reports whether path is currently on the PATH.
func (s *Service) IsActive(path string) bool {
	return switcher.IsActive(s.CurrentPath(), path)
}

// Which lists the PATH directories that provide a command named query.
func (s *Service) Which(query string) []model.WhichMatch {
	return s.cleaner.Which(s.CurrentPath(), query)
}

// Issues lists missing and duplicate entries of a fresh read without
// touching the status line.
func (s *Service) Issues() []model.Issue {
	return s.cleaner.Scan(s.CurrentPath())
}

// Scan is Issues for a user-requested scan: an empty result is reported in
// the status line.
func (s *Service) Scan() []model.Issue {
	issues := s.Issues()
	if len(issues) == 0 {
		s.status = StatusNoIssues
	}
	return issues
}

// Clean removes the selected issues from a fresh read of the PATH value.
// Nothing is written when nothing would be removed.
func (s *Service) Clean(issues []model.Issue) (int, error) {
	done := logging.LogOperationStart(s.log, "clean")
	defer done()

	next, removed := cleaner.Clean(s.CurrentPath(), issues)
	if removed == 0 {
		s.status = StatusNoIssues
		return 0, nil
	}

	if err := s.store.Write(pathlist.Serialize(next)); err != nil {
		return 0, s.fail(errors.Wrap(err, errors.ErrStoreWrite, "write Path"))
	}
	s.broadcast()

	msg := fmt.Sprintf("Removed %d entries.", removed)
	s.state.History.Add(s.now(), msg)
	s.status = msg
	s.log.Info().Int("removed", removed).Msg("Cleaned PATH")
	s.save()
	return removed, nil
}

// Export writes the group mapping to path.
func (s *Service) Export(path string) error {
	if err := transfer.Export(s.fs, path, s.state.Groups); err != nil {
		s.status = fmt.Sprintf("Export Error: %s", errors.UserMessage(err))
		s.log.Error().Err(err).Msg("Export failed")
		return err
	}
	s.status = StatusExported
	return nil
}

// Import replaces the group mapping with the contents of path. On any error
// the current mapping is left as it was.
func (s *Service) Import(path string) error {
	groups, err := transfer.Import(s.fs, path)
	if err != nil {
		s.status = fmt.Sprintf("Import Error: %s", errors.UserMessage(err))
		s.log.Error().Err(err).Msg("Import failed")
		return err
	}
	s.state.Groups = groups
	if !groups.Has(s.state.SelectedGroup) {
		s.state.SelectedGroup = ""
		if names := groups.Names(); len(names) > 0 {
			s.state.SelectedGroup = names[0]
		}
	}
	s.status = StatusImported
	s.save()
	return nil
}

// History returns the activity log, newest first.
func (s *Service) History() []model.HistoryEntry {
	return s.state.History.Entries()
}

func (s *Service) ClearHistory() {
	s.state.History.Clear()
	s.save()
}

func (s *Service) broadcast() {
	if err := s.broadcaster.Broadcast(); err != nil {
		s.log.Debug().Err(err).Msg("Environment change broadcast failed")
	}
}

// fail records err as the status message and returns it.
func (s *Service) fail(err *errors.Error) error {
	s.status = fmt.Sprintf("Error: %s", err.UserMessage())
	s.log.Error().Err(err).Msg("Operation failed")
	return err
}

func (s *Service) save() {
	if s.stateFile == nil {
		return
	}
	if err := s.stateFile.Save(s.state); err != nil {
		s.log.Error().Err(err).Str("path", s.stateFile.Path()).Msg("Failed to save state")
	}
}
