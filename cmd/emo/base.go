package main

import (
	"fmt"

	"github.com/signadot/emoji-format/go-emoji"
	"github.com/signadot/emoji-format/go-emoji/tone"

	"github.com/scott-cotton/cli"
)

func base(cfg *BaseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Base.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: base requires at least one emoji argument", cli.ErrUsage)
	}
	if cfg.Strip {
		cols := cfg.colors(cc.Out)
		for _, arg := range args {
			fmt.Fprintf(cc.Out, "%s\t%s\n", arg, cols.Emoji("%s", tone.Strip(arg)))
		}
		return nil
	}
	cat, err := cfg.catalog()
	if err != nil {
		return err
	}
	r := emoji.NewResolver(cat)
	cols := cfg.colors(cc.Out)
	misses := 0
	for _, arg := range args {
		b, ok := r.Base(arg)
		if !ok {
			misses++
			fmt.Fprintf(cc.Out, "%s\t?\n", arg)
			continue
		}
		fmt.Fprintf(cc.Out, "%s\t%s\n", arg, cols.Emoji("%s", b))
	}
	if misses > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
