// Package world hosts an in-memory live feeding state on an ECS world. It
// implements feed.LiveState and stands in for the runtime that owns the
// authoritative state in a real deployment.
package world

import (
	"strings"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/trough/config"
	"github.com/pthm-cable/trough/feed"
)

// World owns one entity per animal kind, mixture, and recipe, plus the item
// registry. Handle maps keep key lookups O(1); order slices keep listing in
// insertion (display) order.
type World struct {
	ecs *ecs.World

	profiles *ecs.Map[FeedProfile]
	bins     *ecs.Map[MixtureBin]
	cards    *ecs.Map[RecipeCard]

	animalsByKind map[string]ecs.Entity
	animalOrder   []string

	mixturesByKey map[string]ecs.Entity
	mixtureOrder  []string

	recipesByOut map[string]ecs.Entity
	recipeOrder  []string

	items *ItemRegistry
}

// New creates an empty world.
func New() *World {
	w := ecs.NewWorld()
	return &World{
		ecs:           w,
		profiles:      ecs.NewMap[FeedProfile](w),
		bins:          ecs.NewMap[MixtureBin](w),
		cards:         ecs.NewMap[RecipeCard](w),
		animalsByKind: make(map[string]ecs.Entity),
		mixturesByKey: make(map[string]ecs.Entity),
		recipesByOut:  make(map[string]ecs.Entity),
		items:         NewItemRegistry(),
	}
}

// Items returns the world's item registry.
func (w *World) Items() *ItemRegistry { return w.items }

// AddAnimal registers an animal kind and returns its handle. Adding an
// existing kind returns the existing handle.
func (w *World) AddAnimal(kind string, mode config.FeedMode) feed.AnimalRef {
	if e, ok := w.animalsByKind[kind]; ok {
		return animalRef{w: w, e: e}
	}
	e := w.profiles.NewEntity(&FeedProfile{Kind: kind, Mode: mode})
	w.animalsByKind[kind] = e
	w.animalOrder = append(w.animalOrder, kind)
	return animalRef{w: w, e: e}
}

// AddMixture registers a mixture and returns its handle.
func (w *World) AddMixture(output, animal string) feed.MixtureRef {
	key := output + "_" + animal
	if e, ok := w.mixturesByKey[key]; ok {
		return mixtureRef{w: w, e: e}
	}
	e := w.bins.NewEntity(&MixtureBin{Output: output, Animal: animal})
	w.mixturesByKey[key] = e
	w.mixtureOrder = append(w.mixtureOrder, key)
	return mixtureRef{w: w, e: e}
}

// AddRecipe registers a recipe and returns its handle.
func (w *World) AddRecipe(output string) feed.RecipeRef {
	if e, ok := w.recipesByOut[output]; ok {
		return recipeRef{w: w, e: e}
	}
	e := w.cards.NewEntity(&RecipeCard{Output: output})
	w.recipesByOut[output] = e
	w.recipeOrder = append(w.recipeOrder, output)
	return recipeRef{w: w, e: e}
}

// Animal implements feed.LiveState.
func (w *World) Animal(kind string) (feed.AnimalRef, bool) {
	e, ok := w.animalsByKind[kind]
	if !ok {
		return nil, false
	}
	return animalRef{w: w, e: e}, true
}

// Animals implements feed.LiveState.
func (w *World) Animals() []feed.AnimalRef {
	out := make([]feed.AnimalRef, len(w.animalOrder))
	for i, kind := range w.animalOrder {
		out[i] = animalRef{w: w, e: w.animalsByKind[kind]}
	}
	return out
}

// Mixture implements feed.LiveState.
func (w *World) Mixture(output, animal string) (feed.MixtureRef, bool) {
	e, ok := w.mixturesByKey[output+"_"+animal]
	if !ok {
		return nil, false
	}
	return mixtureRef{w: w, e: e}, true
}

// Mixtures implements feed.LiveState.
func (w *World) Mixtures() []feed.MixtureRef {
	out := make([]feed.MixtureRef, len(w.mixtureOrder))
	for i, key := range w.mixtureOrder {
		out[i] = mixtureRef{w: w, e: w.mixturesByKey[key]}
	}
	return out
}

// Recipe implements feed.LiveState.
func (w *World) Recipe(output string) (feed.RecipeRef, bool) {
	e, ok := w.recipesByOut[output]
	if !ok {
		return nil, false
	}
	return recipeRef{w: w, e: e}, true
}

// Recipes implements feed.LiveState.
func (w *World) Recipes() []feed.RecipeRef {
	out := make([]feed.RecipeRef, len(w.recipeOrder))
	for i, output := range w.recipeOrder {
		out[i] = recipeRef{w: w, e: w.recipesByOut[output]}
	}
	return out
}

// ItemID implements feed.LiveState. Only interned names resolve.
func (w *World) ItemID(name string) (feed.ItemID, bool) { return w.items.ID(name) }

// ItemName implements feed.LiveState.
func (w *World) ItemName(id feed.ItemID) (string, bool) { return w.items.Name(id) }

// Seed stocks the world from a configuration, interning every item name it
// mentions and skipping disabled rows. Meant for demo hosts and tests; a
// real host builds its live state from its own data.
func (w *World) Seed(cfg *config.FeedConfig) {
	if cfg == nil {
		return
	}
	for _, a := range cfg.Animals {
		ref := w.AddAnimal(a.Kind, a.Mode)
		for _, g := range a.Groups {
			if g.Disabled {
				continue
			}
			ref.InsertGroup(ref.GroupCount(), feed.LiveGroup{
				Title:         g.Title,
				Effectiveness: g.Effectiveness,
				Preference:    g.Preference,
				Items:         w.internAll(g.Items),
			})
		}
	}
	for _, m := range cfg.Mixtures {
		ref := w.AddMixture(m.Output, m.Animal)
		for _, in := range m.Ingredients {
			if in.Disabled {
				continue
			}
			ref.InsertIngredient(ref.IngredientCount(), feed.LiveIngredient{
				Weight: in.Weight,
				Items:  w.internAll(in.Items),
			})
		}
	}
	for _, r := range cfg.Recipes {
		ref := w.AddRecipe(r.Output)
		for _, in := range r.Ingredients {
			if in.Disabled {
				continue
			}
			li := feed.LiveRecipeIngredient{
				Name:  in.Name,
				Title: in.Title,
				Min:   float64(in.MinPercent) / 100,
				Max:   float64(in.MaxPercent) / 100,
				Items: w.internAll(in.Items),
			}
			li.Ratio = li.Max - li.Min
			ref.InsertIngredient(ref.IngredientCount(), li)
		}
	}
}

func (w *World) internAll(items string) []feed.ItemID {
	names := strings.Fields(items)
	ids := make([]feed.ItemID, len(names))
	for i, n := range names {
		ids[i] = w.items.Intern(n)
	}
	return ids
}
