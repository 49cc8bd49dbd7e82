package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type colors struct {
	Category func(string, ...any) string
	Emoji    func(string, ...any) string
	Tone     func(string, ...any) string
	Label    func(string, ...any) string
}

func newColors() *colors {
	return &colors{
		Category: color.New(color.Bold).SprintfFunc(),
		Emoji:    color.RGB(196, 96, 16).SprintfFunc(),
		Tone:     color.CyanString,
		Label:    color.BlueString,
	}
}

func noColors() *colors {
	return &colors{
		Category: fmt.Sprintf,
		Emoji:    fmt.Sprintf,
		Tone:     fmt.Sprintf,
		Label:    fmt.Sprintf,
	}
}

// colors picks a palette: -color forces one on, -color=false forces
// it off, otherwise terminals get color.
func (cfg *MainConfig) colors(w io.Writer) *colors {
	if cfg.Color {
		return newColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return noColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return noColors()
	}
	if isatty.IsTerminal(f.Fd()) {
		return newColors()
	}
	return noColors()
}
