package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackfish212/fmode/catalog"
	"github.com/urfave/cli/v2"
)

const defaultSnapshotName = "default"

func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagDB,
			Usage:   "path to the snapshot database",
			Value:   "fmode.db",
			EnvVars: []string{"FMODE_DB"},
		},
		&cli.StringFlag{
			Name:  flagName,
			Usage: "snapshot name",
			Value: defaultSnapshotName,
		},
	}
}

func openStore(ctx *cli.Context) (*catalog.Store, error) {
	store, err := catalog.OpenStore(ctx.String(flagDB))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

func newSnapshotCommand() *cli.Command {
	return &cli.Command{
		Name:      "snapshot",
		Usage:     "record the permissions under a directory",
		UsageText: "fmode snapshot [--db FILE] [--name NAME] DIR\n\nExample: fmode snapshot --name before ./deploy",
		ArgsUsage: "DIR",
		Flags:     storeFlags(),
		Action:    snapshotAction,
	}
}

func snapshotAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		if err := cli.ShowSubcommandHelp(ctx); err != nil {
			return err
		}
		return cli.Exit("error: exactly one directory required", 2)
	}
	root := ctx.Args().First()

	entries, err := catalog.NewLocalFS(root).Scan(ctx.Context)
	if err != nil {
		return err
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	name := ctx.String(flagName)
	if err := store.Save(ctx.Context, name, entries); err != nil {
		return err
	}
	slog.Info("snapshot recorded", "name", name, "root", root, "entries", len(entries), "db", store.Path())
	return nil
}

func newDiffCommand() *cli.Command {
	return &cli.Command{
		Name:  "diff",
		Usage: "compare a directory against a recorded snapshot",
		UsageText: `fmode diff [--db FILE] [--name NAME] DIR

Lines start with + for new paths, - for removed paths and ~ for changed modes.

Example: fmode diff --name before ./deploy`,
		ArgsUsage: "DIR",
		Flags:     storeFlags(),
		Action:    diffAction,
	}
}

func diffAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		if err := cli.ShowSubcommandHelp(ctx); err != nil {
			return err
		}
		return cli.Exit("error: exactly one directory required", 2)
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	before, err := store.Load(ctx.Context, ctx.String(flagName))
	if err != nil {
		if errors.Is(err, catalog.ErrSnapshotNotFound) {
			return cli.Exit(fmt.Sprintf("error: %v", err), 1)
		}
		return err
	}
	after, err := catalog.NewLocalFS(ctx.Args().First()).Scan(ctx.Context)
	if err != nil {
		return err
	}
	return render(ctx, catalog.Diff(before, after))
}

func newSnapshotsCommand() *cli.Command {
	return &cli.Command{
		Name:  "snapshots",
		Usage: "list recorded snapshots",
		Flags: storeFlags()[:1],
		Action: func(ctx *cli.Context) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			snaps, err := store.Snapshots(ctx.Context)
			if err != nil {
				return err
			}
			return render(ctx, snaps)
		},
	}
}
