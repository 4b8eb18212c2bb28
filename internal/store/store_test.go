package store

import (
	"errors"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_UnsetReadsEmpty(t *testing.T) {
	s := NewFile(afero.NewMemMapFs(), "/state/path.env")

	v, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestFile_WriteRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFile(fs, "/state/nested/path.env")

	require.NoError(t, s.Write(`C:\A;C:\B`))

	v, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, `C:\A;C:\B`, v)

	raw, err := afero.ReadFile(fs, "/state/nested/path.env")
	require.NoError(t, err)
	assert.Equal(t, "C:\\A;C:\\B\n", string(raw))
}

func TestFile_WriteFailure(t *testing.T) {
	s := NewFile(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/state/path.env")
	assert.Error(t, s.Write("x"))
}

func TestMemory(t *testing.T) {
	m := NewMemory("a;b")

	v, err := m.Read()
	require.NoError(t, err)
	assert.Equal(t, "a;b", v)

	require.NoError(t, m.Write("c"))
	assert.Equal(t, 1, m.Writes())

	m.WriteErr = errors.New("denied")
	assert.EqualError(t, m.Write("d"), "denied")
	v, _ = m.Read()
	assert.Equal(t, "c", v)
	assert.Equal(t, 1, m.Writes())

	m.ReadErr = errors.New("gone")
	_, err = m.Read()
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	fs := afero.NewMemMapFs()

	s, b, err := Open(KindFile, fs, "/p.env")
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)
	assert.NoError(t, b.Broadcast())

	_, _, err = Open(Kind("cloud"), fs, "/p.env")
	assert.Error(t, err)

	s, _, err = Open(KindAuto, fs, "/p.env")
	if runtime.GOOS == "windows" {
		require.NoError(t, err)
		assert.IsType(t, &Registry{}, s)
	} else {
		require.NoError(t, err)
		assert.IsType(t, &File{}, s)
	}
}
