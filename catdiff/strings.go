package catdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Strings diffs two catalog texts line by line. Lines only in from are
// prefixed "- ", lines only in to "+ ", and common lines "  ". Every
// input line appears exactly once in the output.
func Strings(from, to string) string {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, r := range diff.Text {
			b.WriteString(prefix)
			b.WriteString(runeMap[r])
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func mapLinesTo(m map[string]rune, im map[rune]string, text string) []rune {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}
