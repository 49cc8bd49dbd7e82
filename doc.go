// Package emoji resolves rendered emoji back to their catalog entries.
//
// # Overview
//
// Applying a skin tone moves scalars around inside an emoji sequence:
// it can replace a variation selector, slot in before a joiner, or
// append at the end. There is no direct parse from a toned rendering
// back to its base form. A Resolver answers the reverse question by
// re-synthesis: it extracts the tones, collects the catalog entries
// sharing the rendering's leading scalar, re-renders each candidate
// with those tones, and returns the entry whose rendering matches
// scalar for scalar.
//
// # Usage
//
//	cat, err := catalog.Parse(text, 15.1)
//	if err != nil {
//	    ...
//	}
//	r := emoji.NewResolver(cat)
//	base, ok := r.Base("👍🏽")  // "👍", true
//	entry, ok := r.Find("👍🏽") // the 👍 catalog entry
//
// Package level ResolveBase and Find cover one-shot callers; a kept
// Resolver reuses its lookup index across calls.
//
// Some composite emoji render with a leading scalar that differs from
// their catalog form: 🤝 mixes tones as 🫱🏻‍🫲🏽, led by U+1FAF1
// rather than U+1F91D. The resolver retries such lookups through an
// alternate head table; see DefaultAltHeads and WithAltHeads.
//
// # Related Packages
//
//   - github.com/signadot/emoji-format/go-emoji/catalog - catalog model and loader
//   - github.com/signadot/emoji-format/go-emoji/tone - tone application and extraction
//   - github.com/signadot/emoji-format/go-emoji/annotations - labels and search keywords
package emoji
