package main

import (
	"github.com/signadot/emoji-format/go-emoji/data"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{MaxVersion: data.Version}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"catalog"},
			Description: "catalog file instead of the built-in catalog, \"-\" for stdin",
			Type:        cli.NamedFuncOpt(cfg.fileOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "max",
			Aliases:     []string{"maxVersion"},
			Description: "emoji version ceiling for the catalog",
			Type:        cli.NamedFuncOpt(cfg.maxOpt, "(version)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "emo").
		WithSynopsis("emo [opts] command [opts]").
		WithDescription("emo is a tool for working with emoji skin tone catalogs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return emoMain(cfg, cc, args)
		}).
		WithSubs(
			BaseCommand(cfg),
			ToneCommand(cfg),
			ListCommand(cfg),
			SearchCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg))
}

func BaseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BaseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Base, "base").
		WithAliases("b").
		WithSynopsis("base [-strip] <emoji> [emoji...]").
		WithDescription("map toned emoji back to their catalog base form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return base(cfg, cc, args)
		})
}

func ToneCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToneConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("tone").
		WithAliases("t").
		WithSynopsis("tone -t <tone> [-t2 <tone>] <emoji> [emoji...]").
		WithDescription("render emoji with skin tones").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toneRun(cfg, cc, args)
		})
	cfg.Tone = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-w expr]").
		WithDescription("list catalog entries by category").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func SearchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SearchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("search").
		WithAliases("s", "se").
		WithSynopsis("search [-overlay file] <term> [term...]").
		WithDescription("search emoji annotations by keyword").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return search(cfg, cc, args)
		})
	cfg.Search = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-render] [file]").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDescription = `check audits a catalog.

The catalog is parsed under the current version ceiling (-max). Every
tone capable entry is then rendered with every tone, one per one-tone
entry and all pairs per two-tone entry, and each rendering is resolved
back through the reverse index. Renderings that do not resolve to
their own entry are reported.

With no file argument check audits the catalog selected by -f, or the
built-in one. With -render, the parsed catalog is printed back out
after the audit, which shows the catalog as gated by -max.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-entries] <from> <to>").
		WithDescription("diff two catalog files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
