// fmode converts Unix file modes between numeric, octal and ls-style
// renderings and audits the permissions of host directories.
//
// Usage:
//
//	fmode [global flags] <command> [args...]
//
// Commands:
//
//	parse MODE...          decode decimal modes, e.g. 33188
//	octal OCTAL...         decode octal modes, e.g. 100644
//	symbolic STRING...     decode ls-style strings, e.g. -rw-r--r--
//	build                  assemble a mode from --type/--user/--group/--other
//	chmod EXPR MODE...     apply a symbolic chmod expression, e.g. u-r,go+x
//	stat PATH...           show the permission of host files
//	snapshot DIR           record the permissions under DIR in a SQLite file
//	diff DIR               compare DIR against a recorded snapshot
//	snapshots              list recorded snapshots
//	version                show version information
//
// Global flags may also be set through FMODE_DEBUG and FMODE_FORMAT, and a
// .env file (or the file named by FMODE_ENV_FILE) is loaded at startup.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

func main() {
	if err := loadEnvFile(envFilePath()); err != nil {
		slog.Error("failed to load env file", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		slog.Error("fmode failed", "error", err)
		os.Exit(1)
	}
}

func envFilePath() string {
	if p := os.Getenv("FMODE_ENV_FILE"); p != "" {
		return p
	}
	return ".env"
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
