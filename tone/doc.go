// Package tone applies and extracts emoji skin tone modifiers.
//
// # Usage
//
//	// Apply a tone to a base emoji.
//	toned := tone.Apply("👍", tone.Medium) // "👍🏽"
//
//	// Recover the tones present in a rendered emoji.
//	tones := tone.Extract(toned) // [tone.Medium]
//
// All functions operate on Unicode scalars; tone modifiers attach at
// the scalar level, so no grapheme segmentation is performed or
// needed.
//
// # Related Packages
//
//   - github.com/signadot/emoji-format/go-emoji/catalog - catalog model and loader
//   - github.com/signadot/emoji-format/go-emoji - base emoji resolution
package tone
