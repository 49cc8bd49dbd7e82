package main

import (
	"fmt"
	"strconv"

	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/data"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`

	// File is the catalog source, "" for the built-in catalog.
	File       string
	MaxVersion float64

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fileOpt(cc *cli.Context, a string) (any, error) {
	cfg.File = a
	return a, nil
}

func (cfg *MainConfig) maxOpt(cc *cli.Context, a string) (any, error) {
	v, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid version %q", cli.ErrUsage, a)
	}
	cfg.MaxVersion = v
	return v, nil
}

func (cfg *MainConfig) catalog() (*catalog.Catalog, error) {
	if cfg.File == "" {
		return data.Catalog(cfg.MaxVersion)
	}
	text, err := readArg(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", cfg.File, err)
	}
	cat, err := catalog.Parse(text, cfg.MaxVersion)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", cfg.File, err)
	}
	return cat, nil
}

type BaseConfig struct {
	*MainConfig
	Strip bool `cli:"name=strip desc='drop tone scalars without resolving against the catalog'"`

	Base *cli.Command
}

type ToneConfig struct {
	*MainConfig
	T  string `cli:"name=t desc='tone name: light, medium-light, medium, medium-dark, dark'"`
	T2 string `cli:"name=t2 desc='second tone for two-tone emoji'"`

	Tone *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=w aliases=where desc='filter expression, e.g. tones == 2'"`

	List *cli.Command
}

type SearchConfig struct {
	*MainConfig
	Overlay string `cli:"name=overlay desc='annotation overlay file (yaml merge patch)'"`

	Search *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Render bool `cli:"name=render desc='print the gated catalog after checking'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Entries bool `cli:"name=entries desc='diff parsed entries instead of text'"`

	Diff *cli.Command
}
