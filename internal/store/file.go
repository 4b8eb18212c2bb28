package store

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// File keeps the value in a plain text file. It is used where there is no
// persistent user environment to edit (and in tests).
type File struct {
	fs   afero.Fs
	path string
}

func NewFile(fsys afero.Fs, path string) *File {
	return &File{fs: fsys, path: path}
}

// Path returns the backing file location.
func (f *File) Path() string {
	return f.path
}

func (f *File) Read() (string, error) {
	b, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func (f *File) Write(value string) error {
	if err := f.fs.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(f.fs, f.path, []byte(value+"\n"), 0o644)
}
