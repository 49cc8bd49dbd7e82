// Package data embeds the default emoji catalog and annotations.
package data

import (
	_ "embed"

	"github.com/signadot/emoji-format/go-emoji/annotations"
	"github.com/signadot/emoji-format/go-emoji/catalog"
)

// Version is the emoji version of the embedded catalog. Parsing with
// a larger ceiling admits nothing more.
const Version = 16.0

//go:embed emoji.catalog
var catalogText string

//go:embed annotations.yaml
var annotationsYAML []byte

// Catalog parses the embedded catalog gated at maxVersion.
func Catalog(maxVersion float64) (*catalog.Catalog, error) {
	return catalog.Parse(catalogText, maxVersion)
}

// CatalogText returns the embedded catalog text, ungated.
func CatalogText() string {
	return catalogText
}

// Annotations decodes the embedded annotations.
func Annotations() (annotations.Set, error) {
	return annotations.Decode(annotationsYAML)
}
