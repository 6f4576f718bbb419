//go:build unix

package fmode

import (
	"fmt"
	"io/fs"
	"syscall"

	"golang.org/x/sys/unix"
)

func rawMode(info fs.FileInfo) uint32 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint32(st.Mode)
	}
	return FileModeToUnix(info.Mode())
}

// Lstat reads the raw mode of path without following symlinks.
func Lstat(path string) (*Permission, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, fmt.Errorf("lstat %s: %w", path, err)
	}
	return Parse(uint32(st.Mode) & supportedMask)
}
