// Package store reads and writes the persisted user PATH value.
//
// The value is owned by the operating system and shared with every other
// process, so nothing here caches it: each Read goes back to the source.
package store

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/spf13/afero"
)

// ValueName is the name of the variable being managed.
const ValueName = "Path"

// Store is the read/write boundary around the persisted value.
type Store interface {
	// Read returns the verbatim value. An unset value reads as "".
	Read() (string, error)
	// Write replaces the value.
	Write(value string) error
}

// Broadcaster tells other running processes that the environment changed.
// Delivery is best effort.
type Broadcaster interface {
	Broadcast() error
}

// Kind selects a Store implementation.
type Kind string

const (
	KindAuto     Kind = "auto"
	KindRegistry Kind = "registry"
	KindFile     Kind = "file"
)

// Open returns the store and broadcaster for kind. KindAuto picks the
// registry on Windows and the file store everywhere else.
func Open(kind Kind, fs afero.Fs, filePath string) (Store, Broadcaster, error) {
	if kind == KindAuto {
		kind = KindFile
		if runtime.GOOS == "windows" {
			kind = KindRegistry
		}
	}

	switch kind {
	case KindRegistry:
		s, err := NewRegistry()
		if err != nil {
			return nil, nil, err
		}
		return s, NewSystemBroadcaster(), nil
	case KindFile:
		return NewFile(fs, filePath), NopBroadcaster{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store kind %q", kind)
	}
}

// NopBroadcaster does nothing.
type NopBroadcaster struct{}

func (NopBroadcaster) Broadcast() error { return nil }

// Memory is an in-process Store. ReadErr and WriteErr, when set, are
// returned instead of touching the value.
type Memory struct {
	mu       sync.Mutex
	value    string
	writes   int
	ReadErr  error
	WriteErr error
}

func NewMemory(value string) *Memory {
	return &Memory{value: value}
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.value, nil
}

func (m *Memory) Write(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.value = value
	m.writes++
	return nil
}

// Writes returns how many successful writes happened.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
