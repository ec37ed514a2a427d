package feed

import (
	"math"
	"strings"

	"github.com/pthm-cable/trough/config"
)

// Snapshot projects the live state into the configuration shape, converting
// item IDs back to their names. It never mutates the state. A nil state is
// the normal "host not initialized yet" condition and yields an empty
// configuration, not an error.
func Snapshot(state LiveState) *config.FeedConfig {
	cfg := &config.FeedConfig{}
	if state == nil {
		return cfg
	}

	for _, a := range state.Animals() {
		an := config.Animal{Kind: a.Kind(), Mode: a.Mode()}
		for i := 0; i < a.GroupCount(); i++ {
			g := a.Group(i)
			an.Groups = append(an.Groups, config.FoodGroup{
				Title:         g.Title,
				Effectiveness: g.Effectiveness,
				Preference:    g.Preference,
				Items:         itemNames(state, g.Items),
			})
		}
		cfg.Animals = append(cfg.Animals, an)
	}

	for _, m := range state.Mixtures() {
		mx := config.Mixture{Output: m.Output(), Animal: m.Animal()}
		for i := 0; i < m.IngredientCount(); i++ {
			in := m.Ingredient(i)
			mx.Ingredients = append(mx.Ingredients, config.MixIngredient{
				Weight: in.Weight,
				Items:  itemNames(state, in.Items),
			})
		}
		cfg.Mixtures = append(cfg.Mixtures, mx)
	}

	for _, r := range state.Recipes() {
		rc := config.Recipe{Output: r.Output()}
		for i := 0; i < r.IngredientCount(); i++ {
			in := r.Ingredient(i)
			rc.Ingredients = append(rc.Ingredients, config.RecipeIngredient{
				Name:       in.Name,
				Title:      in.Title,
				MinPercent: int(math.Round(in.Min * 100)),
				MaxPercent: int(math.Round(in.Max * 100)),
				Items:      itemNames(state, in.Items),
			})
		}
		cfg.Recipes = append(cfg.Recipes, rc)
	}

	return cfg
}

// itemNames joins the reverse-resolved names of ids with spaces. IDs the
// host no longer knows are dropped.
func itemNames(state LiveState, ids []ItemID) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := state.ItemName(id); ok {
			names = append(names, n)
		}
	}
	return strings.Join(names, " ")
}
