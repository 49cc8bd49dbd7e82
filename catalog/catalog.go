package catalog

import "fmt"

// ToneSupport is the number of skin tone parameters an entry accepts.
type ToneSupport int

const (
	ToneNone ToneSupport = iota
	ToneOne
	ToneTwo
)

func (ts ToneSupport) String() string {
	switch ts {
	case ToneNone:
		return "none"
	case ToneOne:
		return "one"
	case ToneTwo:
		return "two"
	default:
		return fmt.Sprintf("<err: %d is not a tone support>", int(ts))
	}
}

// Entry is one emoji. Base is the canonical toneless scalar sequence.
// Template is non-empty exactly when ToneSupport is ToneTwo; it holds
// the entry's two tone rendering with placeholder tone scalars.
type Entry struct {
	Base        string
	ToneSupport ToneSupport
	Template    string
}

// Category is a named group of entries in source order. SkinTones
// marks the category as skin tone capable; only entries of such
// categories participate in reverse lookup.
type Category struct {
	Name      string
	SkinTones bool
	Entries   []Entry
}

// Catalog is an ordered list of categories. It is built once by Parse
// and treated as read-only from then on.
type Catalog struct {
	Categories []Category
}
