package catalog

import (
	"fmt"
	"sort"
)

// ChangeType says how an entry differs between two scans.
type ChangeType uint8

const (
	Added ChangeType = iota + 1
	Removed
	Modified
)

func (c ChangeType) String() string {
	switch c {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	}
	return "unknown"
}

func (c ChangeType) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Change is one path whose permission differs between two scans.
type Change struct {
	Path string     `json:"path"`
	Type ChangeType `json:"type"`
	From *Entry     `json:"from,omitempty"`
	To   *Entry     `json:"to,omitempty"`
}

func (c Change) String() string {
	switch c.Type {
	case Added:
		return fmt.Sprintf("+ %s %s", c.To.Symbolic, c.Path)
	case Removed:
		return fmt.Sprintf("- %s %s", c.From.Symbolic, c.Path)
	default:
		return fmt.Sprintf("~ %s -> %s %s", c.From.Symbolic, c.To.Symbolic, c.Path)
	}
}

// Diff compares two scans by path. Only the mode is compared; size and
// modification time are ignored.
func Diff(before, after []Entry) []Change {
	old := make(map[string]Entry, len(before))
	for _, e := range before {
		old[e.Path] = e
	}
	var changes []Change
	seen := make(map[string]bool, len(after))
	for _, e := range after {
		seen[e.Path] = true
		to := e
		prev, ok := old[e.Path]
		if !ok {
			changes = append(changes, Change{Path: e.Path, Type: Added, To: &to})
			continue
		}
		if prev.Mode != e.Mode {
			from := prev
			changes = append(changes, Change{Path: e.Path, Type: Modified, From: &from, To: &to})
		}
	}
	for _, e := range before {
		if seen[e.Path] {
			continue
		}
		from := e
		changes = append(changes, Change{Path: e.Path, Type: Removed, From: &from})
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes
}
