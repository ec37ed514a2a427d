package feed

import "strconv"

// Merge keys. Animals match on kind and recipes on output name, exactly and
// case-sensitively, mirroring host naming. Mixtures use a plain concatenated
// compound key; collisions are accepted at the domain's cardinality
// (well under a hundred entries).

func mixtureKey(output, animal string) string {
	return output + "_" + animal
}

// ingredientPos returns the position key for the ingredient at index i:
// one past the number of non-disabled entries preceding it in its own list.
// Positional identity is order-fragile on purpose: reordering ingredients
// between sessions reassigns identity. Callers must keep ingredient order
// stable across edits.
func ingredientPos(disabled []bool, i int) int {
	pos := 1
	for j := 0; j < i; j++ {
		if !disabled[j] {
			pos++
		}
	}
	return pos
}

func posKey(pos int) string {
	return strconv.Itoa(pos)
}
