package main

import (
	"fmt"

	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/filter"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments", cli.ErrUsage)
	}
	var f *filter.Filter
	if cfg.Where != "" {
		f, err = filter.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	cat, err := cfg.catalog()
	if err != nil {
		return err
	}
	cols := cfg.colors(cc.Out)
	for _, c := range cat.Categories {
		wroteHeader := false
		for _, e := range c.Entries {
			if f != nil {
				ok, err := f.Match(c, e)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
			}
			if !wroteHeader {
				fmt.Fprintf(cc.Out, "%s\n", cols.Category("%s", c.Name))
				wroteHeader = true
			}
			switch e.ToneSupport {
			case catalog.ToneOne:
				fmt.Fprintf(cc.Out, "  %s\t%s\n", e.Base, cols.Tone("tones"))
			case catalog.ToneTwo:
				fmt.Fprintf(cc.Out, "  %s\t%s\n", e.Base, cols.Tone("tone pairs"))
			default:
				fmt.Fprintf(cc.Out, "  %s\n", e.Base)
			}
		}
	}
	return nil
}
