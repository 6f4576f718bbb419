//go:build !unix

package fmode

import (
	"io/fs"
	"os"
)

func rawMode(info fs.FileInfo) uint32 {
	return FileModeToUnix(info.Mode())
}

// Lstat reads the mode of path without following symlinks.
func Lstat(path string) (*Permission, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return FromFileInfo(info)
}
