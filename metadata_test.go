package fmode

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

func TestFileModeToUnix(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want uint32
	}{
		{0o644, 0o100644},
		{fs.ModeDir | 0o755, 0o040755},
		{fs.ModeSymlink | 0o777, 0o120777},
		{fs.ModeDevice | fs.ModeCharDevice | 0o620, 0o020620},
		{fs.ModeDevice | 0o660, 0o060660},
		{fs.ModeNamedPipe | 0o600, 0o010600},
		{fs.ModeSocket | 0o755, 0o140755},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileModeToUnix(tt.mode), "FileModeToUnix(%v)", tt.mode)
	}
}

func TestModeStringFromFileMode(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want string
	}{
		{0o644, "-rw-r--r--"},
		{fs.ModeDir | 0o750, "drwxr-x---"},
		{fs.ModeSymlink | 0o777, "lrwxrwxrwx"},
		{fs.ModeSetuid | 0o755, "-rwxr-xr-x"},
	}
	for _, tt := range tests {
		got, err := ModeString(fakeInfo{name: "f", mode: tt.mode})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestFromFileInfoHostFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
	require.NoError(t, os.Chmod(path, 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)

	p, err := FromFileInfo(info)
	require.NoError(t, err)
	assert.Equal(t, "-rw-r--r--", p.Symbolic())
	assert.Equal(t, uint32(33188), p.Mode())
}

func TestLstat(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o700))
	require.NoError(t, os.Chmod(sub, 0o755))

	p, err := Lstat(sub)
	require.NoError(t, err)
	assert.Equal(t, "drwxr-xr-x", p.Symbolic())

	link := filepath.Join(dir, "link")
	if err := os.Symlink(sub, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	p, err = Lstat(link)
	require.NoError(t, err)
	assert.Equal(t, KindSymlink, p.FileKind())

	_, err = Lstat(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}
