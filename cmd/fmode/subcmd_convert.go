package main

import (
	"fmt"
	"strconv"

	"github.com/jackfish212/fmode"
	"github.com/urfave/cli/v2"
)

type modeResult struct {
	Mode     uint32 `json:"mode"`
	Octal    string `json:"octal"`
	Symbolic string `json:"symbolic"`
}

func newModeResult(p *fmode.Permission) modeResult {
	return modeResult{Mode: p.Mode(), Octal: p.Octal(), Symbolic: p.Symbolic()}
}

func (r modeResult) String() string {
	return fmt.Sprintf("%d %s %s", r.Mode, r.Octal, r.Symbolic)
}

func newParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "decode decimal file modes",
		UsageText: "fmode parse MODE...\n\nExample: fmode parse 33188",
		ArgsUsage: "MODE...",
		Action: decodeAction(func(arg string) (*fmode.Permission, error) {
			mode, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a decimal number", fmode.ErrInvalidMode, arg)
			}
			return fmode.Parse(uint32(mode))
		}),
	}
}

func newOctalCommand() *cli.Command {
	return &cli.Command{
		Name:      "octal",
		Usage:     "decode octal file modes",
		UsageText: "fmode octal OCTAL...\n\nExample: fmode octal 100644",
		ArgsUsage: "OCTAL...",
		Action:    decodeAction(fmode.ParseOctal),
	}
}

func newSymbolicCommand() *cli.Command {
	return &cli.Command{
		Name:      "symbolic",
		Usage:     "decode ls-style permission strings",
		UsageText: "fmode symbolic STRING...\n\nExample: fmode symbolic -- -rw-r--r--",
		ArgsUsage: "STRING...",
		Action:    decodeAction(fmode.ParseSymbolic),
	}
}

func decodeAction(decode func(string) (*fmode.Permission, error)) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			if err := cli.ShowSubcommandHelp(ctx); err != nil {
				return err
			}
			return cli.Exit("error: at least one argument required", 2)
		}
		results := make([]modeResult, 0, ctx.NArg())
		for _, arg := range ctx.Args().Slice() {
			p, err := decode(arg)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			results = append(results, newModeResult(p))
		}
		return render(ctx, results)
	}
}

func newBuildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "assemble a mode from its symbolic parts",
		UsageText: `fmode build [--type KIND] [--user RWX] [--group RWX] [--other RWX]

Parts that are not given default to zero.

Example: fmode build --type d --user rwx --group r-x --other r-x`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "file kind, one of -dlcbps"},
			&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Usage: "user triad, e.g. rw-"},
			&cli.StringFlag{Name: "group", Aliases: []string{"g"}, Usage: "group triad, e.g. r--"},
			&cli.StringFlag{Name: "other", Aliases: []string{"o"}, Usage: "other triad, e.g. r--"},
		},
		Action: buildAction,
	}
}

func buildAction(ctx *cli.Context) error {
	b := fmode.NewBuilder()
	if ctx.IsSet("type") {
		kind := ctx.String("type")
		if len(kind) != 1 {
			return cli.Exit(fmt.Sprintf("error: %v: %q must be a single character", fmode.ErrInvalidFileKind, kind), 1)
		}
		if err := fmode.ValidateFileKind(kind[0]); err != nil {
			return cli.Exit(fmt.Sprintf("error: %v", err), 1)
		}
		b.FileKind(kind[0])
	}
	for _, part := range []struct {
		flag string
		kind fmode.OwnerKind
		set  func(string) *fmode.Builder
	}{
		{"user", fmode.User, b.User},
		{"group", fmode.Group, b.Group},
		{"other", fmode.Other, b.Other},
	} {
		if !ctx.IsSet(part.flag) {
			continue
		}
		triad := ctx.String(part.flag)
		if err := fmode.ValidateTriad(part.kind, triad); err != nil {
			return cli.Exit(fmt.Sprintf("error: %v", err), 1)
		}
		part.set(triad)
	}

	p, err := b.Build()
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return render(ctx, []modeResult{newModeResult(p)})
}

func newChmodCommand() *cli.Command {
	return &cli.Command{
		Name:  "chmod",
		Usage: "apply a symbolic chmod expression to decimal modes",
		UsageText: `fmode chmod EXPR MODE...

Nothing on disk is changed; the resulting modes are printed.

Example: fmode chmod u-r,go+x 33188`,
		ArgsUsage: "EXPR MODE...",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() < 2 {
				if err := cli.ShowSubcommandHelp(ctx); err != nil {
					return err
				}
				return cli.Exit("error: expression and mode required", 2)
			}
			expr := ctx.Args().First()
			results := make([]modeResult, 0, ctx.NArg()-1)
			for _, arg := range ctx.Args().Tail() {
				mode, err := strconv.ParseUint(arg, 10, 32)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v: %q is not a decimal number", fmode.ErrInvalidMode, arg), 1)
				}
				p, err := fmode.Parse(uint32(mode))
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				if err := p.Apply(expr); err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				results = append(results, newModeResult(p))
			}
			return render(ctx, results)
		},
	}
}
