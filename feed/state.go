// Package feed reconciles a persisted feeding configuration against the
// host's live state: snapshot, three-way merge, in-place apply, and share
// renormalization. The live state is always reached through an explicit
// LiveState handle so tests can substitute an in-memory fake.
package feed

import "github.com/pthm-cable/trough/config"

// ItemID is the host's dense internal identifier for a raw feed item.
type ItemID uint32

// LiveGroup is one feeding option row as the host stores it. Items are
// resolved IDs, not names; rows in the live state are always active
// (disabled rows exist only in the persisted configuration).
type LiveGroup struct {
	Title         string
	Effectiveness float64
	Preference    float64
	Items         []ItemID
}

// LiveIngredient is one mixture ingredient row in the live state.
type LiveIngredient struct {
	Weight float64
	Items  []ItemID
}

// LiveRecipeIngredient is one recipe ingredient row in the live state.
// Min and Max are fractions in [0,1]; Ratio is Max-Min renormalized across
// the recipe.
type LiveRecipeIngredient struct {
	Name  string
	Title string
	Min   float64
	Max   float64
	Ratio float64
	Items []ItemID
}

// AnimalRef is a mutable handle onto one animal kind's live feeding table.
// Group indices follow live list order; Insert shifts later rows.
type AnimalRef interface {
	Kind() string
	Mode() config.FeedMode
	SetMode(config.FeedMode)
	GroupCount() int
	Group(i int) LiveGroup
	SetGroup(i int, g LiveGroup)
	InsertGroup(i int, g LiveGroup)
	RemoveGroup(i int)
}

// MixtureRef is a mutable handle onto one live mixture.
type MixtureRef interface {
	Output() string
	Animal() string
	IngredientCount() int
	Ingredient(i int) LiveIngredient
	SetIngredient(i int, ing LiveIngredient)
	InsertIngredient(i int, ing LiveIngredient)
	RemoveIngredient(i int)
}

// RecipeRef is a mutable handle onto one live recipe.
type RecipeRef interface {
	Output() string
	IngredientCount() int
	Ingredient(i int) LiveRecipeIngredient
	SetIngredient(i int, ing LiveRecipeIngredient)
	InsertIngredient(i int, ing LiveRecipeIngredient)
	RemoveIngredient(i int)
}

// LiveState is the host-provided handle onto the authoritative in-memory
// feeding state. List methods return refs in live display order. Lookup
// misses are the normal "not found" branch, never an error.
type LiveState interface {
	Animal(kind string) (AnimalRef, bool)
	Animals() []AnimalRef
	Mixture(output, animal string) (MixtureRef, bool)
	Mixtures() []MixtureRef
	Recipe(output string) (RecipeRef, bool)
	Recipes() []RecipeRef

	// ItemID resolves a raw item name; ItemName is the reverse lookup.
	ItemID(name string) (ItemID, bool)
	ItemName(id ItemID) (string, bool)
}
