//go:build windows

package store

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// environmentKey is the per-user environment under HKEY_CURRENT_USER.
const environmentKey = `Environment`

// Registry edits HKCU\Environment\Path.
type Registry struct{}

func NewRegistry() (*Registry, error) {
	return &Registry{}, nil
}

func (r *Registry) Read() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, environmentKey, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(ValueName)
	if errors.Is(err, registry.ErrNotExist) {
		return "", nil
	}
	return v, err
}

// Write keeps the existing value type so %VAR% references in an
// REG_EXPAND_SZ value keep expanding.
func (r *Registry) Write(value string) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, environmentKey, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	_, valType, err := k.GetStringValue(ValueName)
	if err == nil && valType == registry.EXPAND_SZ {
		return k.SetExpandStringValue(ValueName, value)
	}
	return k.SetStringValue(ValueName, value)
}

const (
	hwndBroadcast    = 0xFFFF
	wmSettingChange  = 0x001A
	smtoAbortIfHung  = 0x0002
	broadcastTimeout = 5000
)

var procSendMessageTimeoutW = windows.NewLazySystemDLL("user32.dll").NewProc("SendMessageTimeoutW")

type systemBroadcaster struct{}

// NewSystemBroadcaster sends WM_SETTINGCHANGE("Environment") to all top
// level windows so Explorer and new shells pick up the change.
func NewSystemBroadcaster() Broadcaster {
	return systemBroadcaster{}
}

func (systemBroadcaster) Broadcast() error {
	param, err := windows.UTF16PtrFromString(environmentKey)
	if err != nil {
		return err
	}
	var result uintptr
	ret, _, callErr := procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(param)),
		smtoAbortIfHung,
		broadcastTimeout,
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		return callErr
	}
	return nil
}
