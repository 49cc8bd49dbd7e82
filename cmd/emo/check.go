package main

import (
	"fmt"

	"github.com/signadot/emoji-format/go-emoji"
	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/tone"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	var cat *catalog.Catalog
	switch len(args) {
	case 0:
		cat, err = cfg.catalog()
		if err != nil {
			return err
		}
	case 1:
		text, err := readArg(args[0])
		if err != nil {
			return err
		}
		cat, err = catalog.Parse(text, cfg.MaxVersion)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", args[0], err)
		}
	default:
		return fmt.Errorf("%w: check takes at most one catalog argument", cli.ErrUsage)
	}
	r := emoji.NewResolver(cat)
	entries, tonings, bad := 0, 0, 0
	for _, c := range cat.Categories {
		entries += len(c.Entries)
		if !c.SkinTones {
			continue
		}
		for _, e := range c.Entries {
			switch e.ToneSupport {
			case catalog.ToneOne:
				for _, t := range tone.Tones() {
					tonings++
					if !roundTrips(r, tone.Apply(e.Base, t), e.Base) {
						bad++
						fmt.Fprintf(cc.Out, "%s does not round-trip with %s\n", e.Base, t)
					}
				}
			case catalog.ToneTwo:
				for _, t1 := range tone.Tones() {
					for _, t2 := range tone.Tones() {
						tonings++
						if !roundTrips(r, tone.ApplyPair(e.Template, t1, t2), e.Base) {
							bad++
							fmt.Fprintf(cc.Out, "%s does not round-trip with %s+%s\n",
								e.Base, t1, t2)
						}
					}
				}
			}
		}
	}
	fmt.Fprintf(cc.Out, "%d entries, %d tonings, %d unresolved\n", entries, tonings, bad)
	if cfg.Render {
		fmt.Fprint(cc.Out, cat.Render())
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func roundTrips(r *emoji.Resolver, toned, base string) bool {
	got, ok := r.Base(toned)
	return ok && got == base
}
