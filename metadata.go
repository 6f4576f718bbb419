package fmode

import (
	"io/fs"
)

// Bits of a raw mode that Parse understands: the file type and the nine
// permission bits. Setuid, setgid and sticky are dropped.
const (
	modeTypeMask  = 0o170000
	modePermMask  = 0o777
	supportedMask = modeTypeMask | modePermMask
)

// FileModeToUnix converts a Go fs.FileMode into a raw Unix st_mode value.
func FileModeToUnix(mode fs.FileMode) uint32 {
	raw := uint32(mode & fs.ModePerm)
	switch {
	case mode&fs.ModeDir != 0:
		raw |= 0o040000
	case mode&fs.ModeSymlink != 0:
		raw |= 0o120000
	case mode&fs.ModeCharDevice != 0:
		raw |= 0o020000
	case mode&fs.ModeDevice != 0:
		raw |= 0o060000
	case mode&fs.ModeNamedPipe != 0:
		raw |= 0o010000
	case mode&fs.ModeSocket != 0:
		raw |= 0o140000
	default:
		raw |= 0o100000
	}
	return raw
}

// FromFileInfo builds a Permission from file metadata. The raw st_mode is
// used when the platform exposes one, otherwise it is derived from
// info.Mode().
func FromFileInfo(info fs.FileInfo) (*Permission, error) {
	return Parse(rawMode(info) & supportedMask)
}

// ModeString renders the permission of info as an ls-style string such as
// "-rw-r--r--".
func ModeString(info fs.FileInfo) (string, error) {
	p, err := FromFileInfo(info)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
