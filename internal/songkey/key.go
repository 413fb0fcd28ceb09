package songkey

import (
	"golang.org/x/text/cases"
)

// Separator joins the folded name and singer components. A name ending in the
// separator can collide with a name that carries it literally; existing
// libraries depend on this format, so it stays.
const Separator = "_"

// Key returns the grouping key for a song name and singer. Both components are
// case-folded with Unicode full case folding, which is locale-independent and
// stable across runs. An empty singer is valid and yields an empty second
// component.
func Key(name, singer string) string {
	return Fold(name) + Separator + Fold(singer)
}

// Fold lowercases a value using Unicode case folding.
func Fold(value string) string {
	return cases.Fold().String(value)
}
