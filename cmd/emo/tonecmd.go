package main

import (
	"fmt"

	"github.com/signadot/emoji-format/go-emoji"
	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/tone"

	"github.com/scott-cotton/cli"
)

func toneRun(cfg *ToneConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tone.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.T == "" {
		return fmt.Errorf("%w: tone requires -t", cli.ErrUsage)
	}
	t1, err := tone.ParseTone(cfg.T)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	t2 := t1
	if cfg.T2 != "" {
		t2, err = tone.ParseTone(cfg.T2)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: tone requires at least one emoji argument", cli.ErrUsage)
	}
	cat, err := cfg.catalog()
	if err != nil {
		return err
	}
	cols := cfg.colors(cc.Out)
	misses := 0
	for _, arg := range args {
		e, ok := emoji.Find(cat, arg)
		if !ok {
			misses++
			fmt.Fprintf(cc.Out, "%s\t?\n", arg)
			continue
		}
		var toned string
		switch e.ToneSupport {
		case catalog.ToneOne:
			toned = tone.Apply(e.Base, t1)
		case catalog.ToneTwo:
			toned = tone.ApplyPair(e.Template, t1, t2)
		default:
			// no tone support, the base form is the rendering
			toned = e.Base
		}
		fmt.Fprintf(cc.Out, "%s\t%s\n", arg, cols.Emoji("%s", toned))
	}
	if misses > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
