package main

import (
	"fmt"
	"path/filepath"

	"github.com/jackfish212/fmode/catalog"
	"github.com/urfave/cli/v2"
)

func newStatCommand() *cli.Command {
	return &cli.Command{
		Name:  "stat",
		Usage: "show the permission of host files",
		UsageText: `fmode stat [--recursive] [--where COND] PATH...

COND has the form "field op value" over the fields path, name, kind, mode,
octal, symbolic and size.

Entries found under a directory with --recursive are shown under that
directory's path.

Example: fmode stat -r --where "kind = d" /etc`,
		ArgsUsage: "PATH...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "recursive", Aliases: []string{"r"}, Usage: "walk directories"},
			&cli.StringFlag{Name: "where", Aliases: []string{"w"}, Usage: "only show entries matching COND"},
		},
		Action: statAction,
	}
}

func statAction(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		if err := cli.ShowSubcommandHelp(ctx); err != nil {
			return err
		}
		return cli.Exit("error: at least one path required", 2)
	}

	var entries []catalog.Entry
	for _, path := range ctx.Args().Slice() {
		e, err := catalog.StatPath(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("error: %v", err), 1)
		}
		if !ctx.Bool("recursive") || e.Kind != "d" {
			entries = append(entries, *e)
			continue
		}
		scanned, err := catalog.NewLocalFS(path).Scan(ctx.Context)
		if err != nil {
			return fmt.Errorf("stat: %w", err)
		}
		for _, se := range scanned {
			se.Path = filepath.Join(path, filepath.FromSlash(se.Path))
			entries = append(entries, se)
		}
	}

	entries, err := catalog.Query(entries, ctx.String("where"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return render(ctx, entries)
}
