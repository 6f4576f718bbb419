// Package catalog records the permissions of files on the host, persists
// them as named snapshots and reports how they change.
package catalog

import (
	"fmt"
	"time"

	"github.com/jackfish212/fmode"
)

// Entry is the permission of one file at the time it was scanned.
type Entry struct {
	Path     string    `json:"path"`
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Mode     uint32    `json:"mode"`
	Octal    string    `json:"octal"`
	Symbolic string    `json:"symbolic"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

func newEntry(path, name string, p *fmode.Permission, size int64, modified time.Time) Entry {
	return Entry{
		Path:     path,
		Name:     name,
		Kind:     string(p.FileKind()),
		Mode:     p.Mode(),
		Octal:    p.Octal(),
		Symbolic: p.Symbolic(),
		Size:     size,
		Modified: modified,
	}
}

// Permission decodes the recorded mode again.
func (e Entry) Permission() (*fmode.Permission, error) {
	return fmode.Parse(e.Mode)
}

// String returns an ls-style line for this entry.
func (e Entry) String() string {
	name := e.Path
	if e.Kind == "d" {
		name += "/"
	}
	return fmt.Sprintf("%s %s  %s", e.Symbolic, e.Octal, name)
}
