//go:build !windows

package store

import "errors"

// ErrNoRegistry is returned by NewRegistry outside Windows.
var ErrNoRegistry = errors.New("the registry store is only available on Windows")

// Registry is unavailable on this platform.
type Registry struct{}

func NewRegistry() (*Registry, error) {
	return nil, ErrNoRegistry
}

func (r *Registry) Read() (string, error) { return "", ErrNoRegistry }

func (r *Registry) Write(string) error { return ErrNoRegistry }

// NewSystemBroadcaster returns a no-op: there is no session-wide
// environment to refresh.
func NewSystemBroadcaster() Broadcaster {
	return NopBroadcaster{}
}
