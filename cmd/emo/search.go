package main

import (
	"fmt"

	"github.com/signadot/emoji-format/go-emoji/data"

	"github.com/scott-cotton/cli"
)

func search(cfg *SearchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Search.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: search requires at least one term", cli.ErrUsage)
	}
	set, err := data.Annotations()
	if err != nil {
		return err
	}
	if cfg.Overlay != "" {
		patch, err := readArg(cfg.Overlay)
		if err != nil {
			return err
		}
		set, err = set.Overlay([]byte(patch))
		if err != nil {
			return fmt.Errorf("error overlaying %s: %w", cfg.Overlay, err)
		}
	}
	cols := cfg.colors(cc.Out)
	for _, term := range args {
		for _, b := range set.Search(term) {
			label, _ := set.Label(b)
			fmt.Fprintf(cc.Out, "%s\t%s\n", b, cols.Label("%s", label))
		}
	}
	return nil
}
