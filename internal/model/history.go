package model

import "time"

// HistoryLimit is the number of entries kept; older ones are evicted.
const HistoryLimit = 100

// HistoryTimeFormat is the layout of HistoryEntry.Time.
const HistoryTimeFormat = "2006-01-02 15:04:05"

// HistoryEntry records one change made to the PATH value.
type HistoryEntry struct {
	Time    string `json:"time" toml:"time"`
	Message string `json:"message" toml:"message"`
}

// History is an activity log, newest entry first.
type History struct {
	entries []HistoryEntry
}

// NewHistory wraps existing entries (newest first), dropping anything past
// HistoryLimit.
func NewHistory(entries []HistoryEntry) *History {
	if len(entries) > HistoryLimit {
		entries = entries[:HistoryLimit]
	}
	cp := make([]HistoryEntry, len(entries))
	copy(cp, entries)
	return &History{entries: cp}
}

// Add prepends a message stamped with t.
func (h *History) Add(t time.Time, message string) {
	e := HistoryEntry{Time: t.Format(HistoryTimeFormat), Message: message}
	h.entries = append([]HistoryEntry{e}, h.entries...)
	if len(h.entries) > HistoryLimit {
		h.entries = h.entries[:HistoryLimit]
	}
}

// Entries returns a copy of the log, newest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Clear() {
	h.entries = nil
}
