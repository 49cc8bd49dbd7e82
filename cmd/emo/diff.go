package main

import (
	"fmt"

	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/catdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two catalogs", cli.ErrUsage)
	}
	fromText, err := readArg(args[0])
	if err != nil {
		return err
	}
	toText, err := readArg(args[1])
	if err != nil {
		return err
	}
	if cfg.Entries {
		return diffEntries(cfg, cc, args, fromText, toText)
	}
	if fromText == toText {
		return nil
	}
	fmt.Fprint(cc.Out, catdiff.Strings(fromText, toText))
	return cli.ExitCodeErr(1)
}

func diffEntries(cfg *DiffConfig, cc *cli.Context, args []string, fromText, toText string) error {
	fromCat, err := catalog.Parse(fromText, cfg.MaxVersion)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[0], err)
	}
	toCat, err := catalog.Parse(toText, cfg.MaxVersion)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[1], err)
	}
	rep := catdiff.Entries(fromCat, toCat)
	for _, e := range rep.Removed {
		fmt.Fprintf(cc.Out, "- %s\n", e.Base)
	}
	for _, e := range rep.Added {
		fmt.Fprintf(cc.Out, "+ %s\n", e.Base)
	}
	for _, ch := range rep.Retoned {
		fmt.Fprintf(cc.Out, "~ %s %s -> %s\n", ch.Base, ch.From, ch.To)
	}
	if !rep.Empty() {
		return cli.ExitCodeErr(1)
	}
	return nil
}
