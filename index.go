package emoji

import (
	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/debug"
)

// buildIndex buckets tone capable entries of skin tone categories by
// the leading scalar of their base form, in catalog order. The first
// category to claim a head owns it: later categories' entries under
// an already claimed head are ignored.
func (r *Resolver) buildIndex() {
	byHead := make(map[rune][]catalog.Entry)
	owner := make(map[rune]int)
	for ci := range r.cat.Categories {
		c := &r.cat.Categories[ci]
		if !c.SkinTones {
			continue
		}
		for _, e := range c.Entries {
			if e.ToneSupport == catalog.ToneNone {
				continue
			}
			head, ok := firstRune(e.Base)
			if !ok {
				continue
			}
			if o, claimed := owner[head]; claimed && o != ci {
				continue
			}
			owner[head] = ci
			byHead[head] = append(byHead[head], e)
		}
	}
	if debug.Resolve() {
		debug.Logf("indexed %d heads\n", len(byHead))
	}
	r.byHead = byHead
}
