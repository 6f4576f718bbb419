package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackfish212/fmode"
	"github.com/urfave/cli/v2"
)

const (
	flagDebug  = "debug"
	flagFormat = "format"
	flagDB     = "db"
	flagName   = "name"

	formatText = "text"
	formatJSON = "json"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:                 "fmode",
		Usage:                "convert and audit Unix file modes",
		Version:              fmode.GetVersionInfo().Version,
		Writer:               stdout,
		ErrWriter:            stderr,
		EnableBashCompletion: true,
		HideVersion:          true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Usage:   "enable debug logging to stderr",
				EnvVars: []string{"FMODE_DEBUG"},
			},
			&cli.StringFlag{
				Name:    flagFormat,
				Usage:   "output format: text or json",
				Value:   formatText,
				EnvVars: []string{"FMODE_FORMAT"},
			},
		},
		Before: func(ctx *cli.Context) error {
			level := slog.LevelInfo
			if ctx.Bool(flagDebug) {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{Level: level})))

			switch ctx.String(flagFormat) {
			case formatText, formatJSON:
				return nil
			default:
				return cli.Exit(fmt.Sprintf("error: unknown format %q", ctx.String(flagFormat)), 2)
			}
		},
		Commands: []*cli.Command{
			newParseCommand(),
			newOctalCommand(),
			newSymbolicCommand(),
			newBuildCommand(),
			newChmodCommand(),
			newStatCommand(),
			newSnapshotCommand(),
			newDiffCommand(),
			newSnapshotsCommand(),
			newVersionCommand(),
		},
	}
}

func newVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "show version information",
		Action: func(ctx *cli.Context) error {
			info := fmode.GetVersionInfo()
			if ctx.String(flagFormat) == formatJSON {
				return writeJSON(ctx.App.Writer, info)
			}
			_, err := fmt.Fprintln(ctx.App.Writer, info)
			return err
		},
	}
}

// render writes items as JSON or, in text mode, one line per element using
// its String method.
func render[T fmt.Stringer](ctx *cli.Context, items []T) error {
	if ctx.String(flagFormat) == formatJSON {
		if items == nil {
			items = []T{}
		}
		return writeJSON(ctx.App.Writer, items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(ctx.App.Writer, item.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
