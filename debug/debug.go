package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load    bool
	Resolve bool
	Filter  bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("EMOJI_DEBUG_LOAD")
	d.Resolve = boolEnv("EMOJI_DEBUG_RESOLVE")
	d.Filter = boolEnv("EMOJI_DEBUG_FILTER")
	d.LSP = boolEnv("EMOJI_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Resolve() bool {
	return d.Resolve
}
func Filter() bool {
	return d.Filter
}
func LSP() bool {
	return d.LSP
}
