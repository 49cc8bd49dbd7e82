package catalog

import "strings"

// Render writes the catalog back in its text form. Version fields are
// consumed by Parse, so the output is the version-gated view; parsing
// it again at any ceiling yields an equal catalog.
func (c *Catalog) Render() string {
	var b strings.Builder
	for i := range c.Categories {
		group := &c.Categories[i]
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(group.Name)
		if group.SkinTones {
			b.WriteString(",1")
		}
		b.WriteByte('\n')
		for _, e := range group.Entries {
			b.WriteString(e.Base)
			switch e.ToneSupport {
			case ToneOne:
				b.WriteString(",1")
			case ToneTwo:
				b.WriteByte(',')
				b.WriteString(e.Template)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
