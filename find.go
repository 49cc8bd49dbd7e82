package emoji

import (
	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/tone"
)

// Find locates the catalog entry for query, which may be toned. A
// toned query is resolved to its base first and matched only against
// skin tone capable categories; an untoned query scans the whole
// catalog. First match in catalog order wins.
func (r *Resolver) Find(query string) (catalog.Entry, bool) {
	toned := len(tone.Extract(query)) > 0
	base := query
	if toned {
		b, ok := r.Base(query)
		if !ok {
			return catalog.Entry{}, false
		}
		base = b
	}
	for _, c := range r.cat.Categories {
		if toned && !c.SkinTones {
			continue
		}
		for _, e := range c.Entries {
			if e.Base == base {
				return e, true
			}
		}
	}
	return catalog.Entry{}, false
}

// ResolveBase is a one-shot (*Resolver).Base for callers that do not
// keep a Resolver.
func ResolveBase(cat *catalog.Catalog, toned string, opts ...ResolverOption) (string, bool) {
	return NewResolver(cat, opts...).Base(toned)
}

// Find is a one-shot (*Resolver).Find.
func Find(cat *catalog.Catalog, query string, opts ...ResolverOption) (catalog.Entry, bool) {
	return NewResolver(cat, opts...).Find(query)
}
