// Package annotations loads emoji display labels and search keywords.
//
// The artifact is a YAML mapping from base emoji to a non-empty list
// of strings; the first element is the display label, the rest are
// search keywords. It is produced alongside the catalog text and
// keyed by the same canonical base strings.
//
// # Usage
//
//	set, err := annotations.Decode(data)
//	label, ok := set.Label("👍")   // "thumbs up"
//	hits := set.Search("thumb")    // ["👍"]
//
// Overlay layers a merge patch over a set, for vendor or user
// overrides, without mutating the original.
package annotations
