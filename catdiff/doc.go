// Package catdiff compares catalogs.
//
// Two views are provided. [Strings] diffs catalog texts line by line
// and is faithful to the input, down to details with no picker-visible
// effect such as entry order and version columns. [Entries] compares
// parsed catalogs by base emoji and reports what an emoji picker would
// notice: bases added, bases removed, and bases whose tone support
// changed.
//
// # Usage
//
//	fromCat, _ := catalog.Parse(fromText, max)
//	toCat, _ := catalog.Parse(toText, max)
//	rep := catdiff.Entries(fromCat, toCat)
//	if !rep.Empty() { ... }
package catdiff
