// Package catalog models an emoji catalog and loads it from its text
// format.
//
// # Catalog Text Format
//
// A catalog is UTF-8 text made of groups separated by blank lines.
// The first line of a group is a category header:
//
//	name[,skinToneFlag]
//
// Any non-empty flag marks the category as skin tone capable. Each
// following line up to the next blank line is one entry:
//
//	emoji[,toneField][,version][,toneVersion]
//
// Trailing empty fields may be omitted. The tone field is empty for
// entries without skin tone support, "1" for entries taking one tone,
// and a two tone template literal otherwise. Versions are emoji
// versions such as "14.0": entries above the loader's version ceiling
// are dropped, and entries whose tone version is above the ceiling
// keep their base form but lose tone support.
//
// The format is the contract with the offline producer that builds
// catalogs from Unicode data. Malformed text fails the whole load; a
// catalog is a build artifact, so a partial read is never wanted.
//
// # Usage
//
//	cat, err := catalog.Parse(text, 15.1)
//	if err != nil {
//	    // a *ParseError wrapping ErrParse, with the failing line
//	}
//
// A parsed Catalog is immutable and safe for unsynchronized
// concurrent reads.
//
// # Related Packages
//
//   - github.com/signadot/emoji-format/go-emoji - base emoji resolution
//   - github.com/signadot/emoji-format/go-emoji/tone - tone application
//   - github.com/signadot/emoji-format/go-emoji/data - embedded default catalog
package catalog
