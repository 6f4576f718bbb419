package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackfish212/fmode"

	_ "modernc.org/sqlite"
)

// Store keeps named snapshots of scanned entries in a SQLite database.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// Snapshot describes one saved scan.
type Snapshot struct {
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	Entries int       `json:"entries"`
}

func OpenStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	s := &Store{db: db, dbPath: dbPath}
	if err := s.initDB(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return s, nil
}

func (s *Store) initDB() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		name TEXT PRIMARY KEY,
		created INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS entries (
		snapshot TEXT NOT NULL,
		path TEXT NOT NULL,
		name TEXT NOT NULL,
		mode INTEGER NOT NULL,
		size INTEGER NOT NULL DEFAULT 0,
		modified INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (snapshot, path)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Path() string { return s.dbPath }

// Save records entries under name, replacing any snapshot with that name.
func (s *Store) Save(ctx context.Context, name string, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE snapshot = ?`, name); err != nil {
		return fmt.Errorf("save: clearing entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (name, created) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET created = excluded.created
	`, name, time.Now().Unix()); err != nil {
		return fmt.Errorf("save: snapshot row: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (snapshot, path, name, mode, size, modified) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, name, e.Path, e.Name, int64(e.Mode), e.Size, e.Modified.Unix()); err != nil {
			return fmt.Errorf("save: %s: %w", e.Path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	slog.Debug("catalog: saved snapshot", "db", s.dbPath, "name", name, "entries", len(entries))
	return nil
}

// Load returns the entries of a snapshot sorted by path.
func (s *Store) Load(ctx context.Context, name string) ([]Entry, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM snapshots WHERE name = ?)`, name).Scan(&exists); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT path, name, mode, size, modified FROM entries WHERE snapshot = ? ORDER BY path`, name)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			path, base string
			mode, size int64
			modified   int64
		)
		if err := rows.Scan(&path, &base, &mode, &size, &modified); err != nil {
			return nil, fmt.Errorf("load: scanning row: %w", err)
		}
		p, err := fmode.Parse(uint32(mode))
		if err != nil {
			return nil, fmt.Errorf("load: %s: %w", path, err)
		}
		entries = append(entries, newEntry(path, base, p, size, time.Unix(modified, 0)))
	}
	return entries, rows.Err()
}

// Snapshots lists saved snapshots, newest first.
func (s *Store) Snapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.name, s.created, COUNT(e.path)
		FROM snapshots s LEFT JOIN entries e ON e.snapshot = s.name
		GROUP BY s.name, s.created
		ORDER BY s.created DESC, s.name
	`)
	if err != nil {
		return nil, fmt.Errorf("snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var created int64
		if err := rows.Scan(&snap.Name, &created, &snap.Entries); err != nil {
			return nil, fmt.Errorf("snapshots: scanning row: %w", err)
		}
		snap.Created = time.Unix(created, 0)
		out = append(out, snap)
	}
	return out, rows.Err()
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s  %d entries  %s", s.Name, s.Entries, s.Created.Format("2006-01-02 15:04:05"))
}
