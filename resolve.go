package emoji

import (
	"sync"

	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/debug"
	"github.com/signadot/emoji-format/go-emoji/tone"
)

// Resolver maps rendered emoji back to catalog entries. It keeps a
// lazily built index from leading scalar to tone capable entries, so
// a Resolver should be reused across lookups. Safe for concurrent
// use; the catalog must not change underneath it.
type Resolver struct {
	cat      *catalog.Catalog
	altHeads map[rune][]rune

	once   sync.Once
	byHead map[rune][]catalog.Entry
}

type ResolverOption func(*Resolver)

// WithAltHeads replaces the alternate head table consulted when a
// rendered leading scalar has no direct match.
func WithAltHeads(m map[rune][]rune) ResolverOption {
	return func(r *Resolver) { r.altHeads = m }
}

func NewResolver(cat *catalog.Catalog, opts ...ResolverOption) *Resolver {
	r := &Resolver{cat: cat, altHeads: DefaultAltHeads()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Base maps a rendered emoji to its catalog base form. Strings
// carrying no tone scalar pass through unchanged. The second return
// is false when no catalog entry renders to s; a miss is a normal
// outcome, not an error.
func (r *Resolver) Base(s string) (string, bool) {
	tones := tone.Extract(s)
	if len(tones) == 0 {
		return s, true
	}
	head, ok := firstRune(s)
	if !ok {
		return "", false
	}
	if e, ok := r.match(head, s, tones); ok {
		return e.Base, true
	}
	for _, alt := range r.altHeads[head] {
		if e, ok := r.match(alt, s, tones); ok {
			if debug.Resolve() {
				debug.Logf("resolved %q under alternate head %U\n", s, alt)
			}
			return e.Base, true
		}
	}
	if debug.Resolve() {
		debug.Logf("no base for %q (tones %v)\n", s, tones)
	}
	return "", false
}

// match re-renders each entry under head with the extracted tones and
// compares against the rendered input.
func (r *Resolver) match(head rune, rendered string, tones []tone.Tone) (catalog.Entry, bool) {
	r.once.Do(r.buildIndex)
	for _, e := range r.byHead[head] {
		if render(e, tones) == rendered {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

// render synthesizes e's toned form. A two tone entry repeats the
// first tone when only one was extracted; such a rendering carries
// two tone scalars and cannot match a one tone input anyway.
func render(e catalog.Entry, tones []tone.Tone) string {
	switch e.ToneSupport {
	case catalog.ToneOne:
		return tone.Apply(e.Base, tones[0])
	case catalog.ToneTwo:
		t2 := tones[0]
		if len(tones) > 1 {
			t2 = tones[1]
		}
		return tone.ApplyPair(e.Template, tones[0], t2)
	}
	return e.Base
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
