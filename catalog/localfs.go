package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackfish212/fmode"
	"github.com/jackfish212/fmode/types"
)

// LocalFS reads permissions from a host directory. It never changes them.
type LocalFS struct {
	root string
}

func NewLocalFS(root string) *LocalFS {
	return &LocalFS{root: filepath.Clean(root)}
}

func (l *LocalFS) Root() string { return l.root }

func (l *LocalFS) hostPath(rel string) string {
	if rel == "" || rel == "." {
		return l.root
	}
	return filepath.Join(l.root, filepath.FromSlash(rel))
}

// Stat returns the entry for a path relative to the root.
func (l *LocalFS) Stat(_ context.Context, rel string) (*Entry, error) {
	hp := l.hostPath(rel)
	info, err := os.Lstat(hp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return nil, err
	}
	e, err := l.infoToEntry(hp, relSlash(rel), info)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Scan walks the root and returns one entry per file, sorted by path. The
// root itself is recorded as ".". Symlinks are recorded, not followed.
// A root that cannot be read is an error; unreadable paths below it are
// skipped.
func (l *LocalFS) Scan(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(l.root, func(hp string, d fs.DirEntry, err error) error {
		if err != nil {
			if hp == l.root || d == nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("%w: %s", ErrNotFound, hp)
				}
				return err
			}
			slog.Debug("catalog: skipping unreadable path", "path", hp, "error", err)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(l.root, hp)
		if err != nil {
			return err
		}
		e, err := l.infoToEntry(hp, filepath.ToSlash(rel), info)
		if err != nil {
			slog.Debug("catalog: unsupported mode", "path", hp, "error", err)
			return nil
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", l.root, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	slog.Debug("catalog: scanned", "root", l.root, "entries", len(entries))
	return entries, nil
}

func (l *LocalFS) infoToEntry(hp, rel string, info fs.FileInfo) (Entry, error) {
	p, err := fmode.FromFileInfo(info)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", hp, err)
	}
	return newEntry(rel, info.Name(), p, regularSize(p, info), info.ModTime()), nil
}

func regularSize(p *fmode.Permission, info fs.FileInfo) int64 {
	if p.FileKind() == types.KindRegular {
		return info.Size()
	}
	return 0
}

func relSlash(rel string) string {
	if rel == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(rel))
}

// StatPath returns the entry for a host path, recorded under that path.
func StatPath(path string) (*Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	p, err := fmode.FromFileInfo(info)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e := newEntry(path, info.Name(), p, regularSize(p, info), info.ModTime())
	return &e, nil
}
