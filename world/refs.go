package world

import (
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/trough/config"
	"github.com/pthm-cable/trough/feed"
)

// animalRef adapts a FeedProfile entity to feed.AnimalRef. All mutation goes
// through the component pointer, so handles stay valid across edits.
type animalRef struct {
	w *World
	e ecs.Entity
}

func (r animalRef) profile() *FeedProfile { return r.w.profiles.Get(r.e) }

func (r animalRef) Kind() string              { return r.profile().Kind }
func (r animalRef) Mode() config.FeedMode     { return r.profile().Mode }
func (r animalRef) SetMode(m config.FeedMode) { r.profile().Mode = m }
func (r animalRef) GroupCount() int           { return len(r.profile().Groups) }

func (r animalRef) Group(i int) feed.LiveGroup { return r.profile().Groups[i] }

func (r animalRef) SetGroup(i int, g feed.LiveGroup) { r.profile().Groups[i] = g }

func (r animalRef) InsertGroup(i int, g feed.LiveGroup) {
	p := r.profile()
	p.Groups = slices.Insert(p.Groups, i, g)
}

func (r animalRef) RemoveGroup(i int) {
	p := r.profile()
	p.Groups = slices.Delete(p.Groups, i, i+1)
}

// mixtureRef adapts a MixtureBin entity to feed.MixtureRef.
type mixtureRef struct {
	w *World
	e ecs.Entity
}

func (r mixtureRef) bin() *MixtureBin { return r.w.bins.Get(r.e) }

func (r mixtureRef) Output() string       { return r.bin().Output }
func (r mixtureRef) Animal() string       { return r.bin().Animal }
func (r mixtureRef) IngredientCount() int { return len(r.bin().Ingredients) }

func (r mixtureRef) Ingredient(i int) feed.LiveIngredient { return r.bin().Ingredients[i] }

func (r mixtureRef) SetIngredient(i int, in feed.LiveIngredient) { r.bin().Ingredients[i] = in }

func (r mixtureRef) InsertIngredient(i int, in feed.LiveIngredient) {
	b := r.bin()
	b.Ingredients = slices.Insert(b.Ingredients, i, in)
}

func (r mixtureRef) RemoveIngredient(i int) {
	b := r.bin()
	b.Ingredients = slices.Delete(b.Ingredients, i, i+1)
}

// recipeRef adapts a RecipeCard entity to feed.RecipeRef.
type recipeRef struct {
	w *World
	e ecs.Entity
}

func (r recipeRef) card() *RecipeCard { return r.w.cards.Get(r.e) }

func (r recipeRef) Output() string       { return r.card().Output }
func (r recipeRef) IngredientCount() int { return len(r.card().Ingredients) }

func (r recipeRef) Ingredient(i int) feed.LiveRecipeIngredient { return r.card().Ingredients[i] }

func (r recipeRef) SetIngredient(i int, in feed.LiveRecipeIngredient) {
	r.card().Ingredients[i] = in
}

func (r recipeRef) InsertIngredient(i int, in feed.LiveRecipeIngredient) {
	c := r.card()
	c.Ingredients = slices.Insert(c.Ingredients, i, in)
}

func (r recipeRef) RemoveIngredient(i int) {
	c := r.card()
	c.Ingredients = slices.Delete(c.Ingredients, i, i+1)
}
