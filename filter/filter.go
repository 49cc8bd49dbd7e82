package filter

import (
	"fmt"

	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/debug"
	"github.com/signadot/emoji-format/go-emoji/tone"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// A Filter is a compiled entry selection expression.
type Filter struct {
	src string
	prg *vm.Program
}

// Compile compiles src into a Filter.
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	if debug.Filter() {
		debug.Logf("compiled filter %q\n", src)
	}
	return &Filter{src: src, prg: prg}, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(env(catalog.Category{}, catalog.Entry{})),
		expr.AsBool(),
		expr.Function("tone", func(params ...any) (any, error) {
			t, err := tone.ParseTone(params[0].(string))
			if err != nil {
				return nil, err
			}
			r, _ := t.Rune()
			return string(r), nil
		},
			new(func(string) string)),
	}
}

func env(c catalog.Category, e catalog.Entry) map[string]any {
	return map[string]any{
		"base":      e.Base,
		"category":  c.Name,
		"skinTones": c.SkinTones,
		"tones":     int(e.ToneSupport),
		"template":  e.Template,
	}
}

// Match reports whether entry e of category c satisfies the filter.
func (f *Filter) Match(c catalog.Category, e catalog.Entry) (bool, error) {
	res, err := expr.Run(f.prg, env(c, e))
	if err != nil {
		return false, err
	}
	v, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, want bool", f.src, res)
	}
	return v, nil
}

func (f *Filter) String() string {
	return f.src
}
