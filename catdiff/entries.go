package catdiff

import (
	"github.com/signadot/emoji-format/go-emoji/catalog"
)

// A Change records a base whose tone support differs between two
// catalogs.
type Change struct {
	Base string
	From catalog.ToneSupport
	To   catalog.ToneSupport
}

// A Report summarizes the entry level difference between two catalogs.
// Added and Removed hold the entries as they appear in the catalog that
// has them. Order follows catalog order.
type Report struct {
	Added   []catalog.Entry
	Removed []catalog.Entry
	Retoned []Change
}

func (r *Report) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Retoned) == 0
}

// Entries compares two catalogs by base emoji, ignoring category
// structure. When a base repeats within a catalog, its first entry
// stands for it.
func Entries(from, to *catalog.Catalog) *Report {
	fromMap, fromOrder := entryMap(from)
	toMap, toOrder := entryMap(to)
	res := &Report{}
	for _, base := range fromOrder {
		fe := fromMap[base]
		te, ok := toMap[base]
		if !ok {
			res.Removed = append(res.Removed, fe)
			continue
		}
		if fe.ToneSupport != te.ToneSupport {
			res.Retoned = append(res.Retoned, Change{
				Base: base,
				From: fe.ToneSupport,
				To:   te.ToneSupport,
			})
		}
	}
	for _, base := range toOrder {
		if _, ok := fromMap[base]; !ok {
			res.Added = append(res.Added, toMap[base])
		}
	}
	return res
}

func entryMap(c *catalog.Catalog) (map[string]catalog.Entry, []string) {
	m := map[string]catalog.Entry{}
	var order []string
	for _, cat := range c.Categories {
		for _, e := range cat.Entries {
			if _, ok := m[e.Base]; ok {
				continue
			}
			m[e.Base] = e
			order = append(order, e.Base)
		}
	}
	return m, order
}
