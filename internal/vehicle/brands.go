package vehicle

import (
	"golang.org/x/text/cases"
)

// Brands is the catalogue offered by the create and edit screens. Marca stays
// free text; the catalogue is only a convenience.
var Brands = []string{
	"Chevrolet",
	"Fiat",
	"Ford",
	"Honda",
	"Hyundai",
	"Jeep",
	"Nissan",
	"Renault",
	"Toyota",
	"Volkswagen",
}

// DefaultIcon is the glyph name shown next to every brand.
const DefaultIcon = "car"

// BrandIcon returns the glyph name for a brand. Every brand currently shares
// the generic car glyph.
func BrandIcon(string) string {
	return DefaultIcon
}

// CanonicalBrand returns the catalogue spelling of brand when it matches an
// entry case-insensitively, and brand unchanged otherwise.
func CanonicalBrand(brand string) string {
	fold := cases.Fold()
	key := fold.String(brand)
	for _, known := range Brands {
		if fold.String(known) == key {
			return known
		}
	}
	return brand
}
