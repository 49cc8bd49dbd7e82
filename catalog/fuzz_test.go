package catalog

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"Smileys\n😀\n",
		"Smileys\n😀,,12.0\n",
		"People,1\n👍,1,0.6,1.0\n🤝,🫱🏻‍🫲🏻,3.0,14.0\n",
		"A\n🐶\n🐱\n\nB,1\n👍,1\n",
		",1\n👻\n",
		"\n\nSmileys\n😀\n\n",
		"Smileys,1,extra\n",
		"Smileys\n😀,,notaversion\n",
		"Smileys\n,1\n",
		"name,flag\nx,y,1.5,2.5\n",
		"a\nb,1\n\nc\nd,tpl\n",
	}
	for _, s := range seeds {
		f.Add(s, 15.1)
	}

	f.Fuzz(func(t *testing.T, text string, maxVersion float64) {
		// Primary target: parse should not panic
		cat, err := Parse(text, maxVersion)
		if err != nil {
			return // parse errors are expected for random input
		}
		// Structural invariants of every successful load
		for _, c := range cat.Categories {
			if strings.TrimSpace(c.Name) == "" {
				t.Errorf("category with blank name survived")
			}
			for _, e := range c.Entries {
				if strings.TrimSpace(e.Base) == "" {
					t.Errorf("entry with blank base in %q", c.Name)
				}
				if (e.Template != "") != (e.ToneSupport == ToneTwo) {
					t.Errorf("entry %q: template %q with support %s", e.Base, e.Template, e.ToneSupport)
				}
			}
		}
		// Render of a parsed catalog reparses to an equal catalog
		again, err := Parse(cat.Render(), math.Inf(1))
		if err != nil {
			t.Fatalf("reparse of rendered catalog: %v", err)
		}
		if diff := cmp.Diff(cat, again); diff != "" {
			t.Errorf("render round trip (-first +second):\n%s", diff)
		}
	})
}
