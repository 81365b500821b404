package vehicle

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block stripped after
// canonical decomposition.
var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
})

// Normalize folds text for search: canonical decomposition with diacritics
// removed, whitespace runs collapsed to one space, trimmed and lower-cased.
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(strings.Join(strings.FieldsFunc(folded, unicode.IsSpace), " "))
}

// Matches reports whether the normalized term is a substring of any of the
// brand, model, plate, color or year fields.
func (v Vehicle) Matches(term string) bool {
	needle := Normalize(term)
	for _, field := range []string{v.Marca, v.Modelo, v.Placa, v.Cor, v.Ano} {
		if strings.Contains(Normalize(field), needle) {
			return true
		}
	}
	return false
}

// Filter returns the vehicles matching term, preserving order. An empty term
// matches everything.
func Filter(vehicles []Vehicle, term string) []Vehicle {
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Matches(term) {
			out = append(out, v)
		}
	}
	return out
}
