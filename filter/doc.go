// Package filter selects catalog entries with expr-lang expressions.
//
// A filter is a boolean expression evaluated once per entry, against an
// environment describing the entry and its category:
//
//	base       string  the entry's base emoji
//	category   string  the category name
//	skinTones  bool    whether the category is tone capable
//	tones      int     how many tones the entry accepts (0, 1 or 2)
//	template   string  the two tone template, or "" when tones < 2
//
// The environment also provides tone(name), which returns the tone
// scalar for a tone name so it can be used in string operations.
//
// # Usage
//
//	f, err := filter.Compile(`skinTones && tones == 2`)
//	if err != nil { ... }
//	for _, c := range cat.Categories {
//		for _, e := range c.Entries {
//			ok, err := f.Match(c, e)
//			...
//		}
//	}
//
// Expressions that cannot evaluate to a bool are rejected at compile
// time.
package filter
