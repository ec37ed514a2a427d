package feed

import "github.com/pthm-cable/trough/config"

// Merge reconciles a previously persisted configuration with a fresh live
// snapshot and returns the merged configuration. Neither input is mutated;
// either may be nil (treated as empty).
//
// Per collection the merge is two passes. Pass one walks persisted entries in
// persisted order: an entry with a live counterpart is kept with the
// persisted value winning outright; an entry with no counterpart is kept only
// when keepAllLocal is set or the entry is disabled, otherwise it is dropped
// (the host deleted or renamed it upstream). Pass two appends live-only
// entries in live encountered order. User-arranged order therefore survives
// repeated cycles while upstream additions land at the tail.
//
// keepAllLocal is set at session start, so custom entries that do not exist
// in the live state yet survive long enough for Apply to insert them. At
// steady-state persist time it is off: once a non-disabled local entry has
// vanished from the live state it is not silently resurrected forever.
func Merge(persisted, live *config.FeedConfig, keepAllLocal bool) *config.FeedConfig {
	p := persisted.Clone()
	if p == nil {
		p = &config.FeedConfig{}
	}
	l := live.Clone()
	if l == nil {
		l = &config.FeedConfig{}
	}

	out := &config.FeedConfig{}

	out.Animals = mergeOrdered(p.Animals, l.Animals,
		func(items []config.Animal, i int) string { return items[i].Kind },
		func(config.Animal) bool { return false },
		keepAllLocal,
		func(pa, la config.Animal) config.Animal {
			// Persisted wins on every animal field, including feed mode;
			// only the nested groups need a real merge.
			pa.Groups = mergeGroups(pa.Groups, la.Groups, keepAllLocal)
			return pa
		})

	out.Mixtures = mergeOrdered(p.Mixtures, l.Mixtures,
		func(items []config.Mixture, i int) string { return mixtureKey(items[i].Output, items[i].Animal) },
		func(config.Mixture) bool { return false },
		keepAllLocal,
		func(pm, lm config.Mixture) config.Mixture {
			pm.Ingredients = mergeOrdered(pm.Ingredients, lm.Ingredients,
				mixIngredientKeyAt,
				func(in config.MixIngredient) bool { return in.Disabled },
				keepAllLocal,
				func(pi, _ config.MixIngredient) config.MixIngredient { return pi })
			return pm
		})

	out.Recipes = mergeOrdered(p.Recipes, l.Recipes,
		func(items []config.Recipe, i int) string { return items[i].Output },
		func(config.Recipe) bool { return false },
		keepAllLocal,
		func(pr, lr config.Recipe) config.Recipe {
			pr.Ingredients = mergeOrdered(pr.Ingredients, lr.Ingredients,
				recipeIngredientKeyAt,
				func(in config.RecipeIngredient) bool { return in.Disabled },
				keepAllLocal,
				func(pi, _ config.RecipeIngredient) config.RecipeIngredient { return pi })
			return pr
		})

	// The supplement is orthogonal to the three collections: persisted wins
	// when present, otherwise the stock default.
	if p.Supplement != nil {
		out.Supplement = p.Supplement
	} else {
		out.Supplement = config.DefaultSupplement()
	}

	return out
}

// mergeGroups merges one animal's food groups by title.
func mergeGroups(persisted, live []config.FoodGroup, keepAllLocal bool) []config.FoodGroup {
	return mergeOrdered(persisted, live,
		func(items []config.FoodGroup, i int) string { return items[i].Title },
		func(g config.FoodGroup) bool { return g.Disabled },
		keepAllLocal,
		func(pg, _ config.FoodGroup) config.FoodGroup { return pg })
}

// mixIngredientKeyAt keys mixture ingredients by position. Disabled entries
// get no key at all: they hold no slot in the live list and are carried by
// the retention rule alone.
func mixIngredientKeyAt(items []config.MixIngredient, i int) string {
	if items[i].Disabled {
		return ""
	}
	disabled := make([]bool, len(items))
	for j := range items {
		disabled[j] = items[j].Disabled
	}
	return posKey(ingredientPos(disabled, i))
}

func recipeIngredientKeyAt(items []config.RecipeIngredient, i int) string {
	if items[i].Disabled {
		return ""
	}
	disabled := make([]bool, len(items))
	for j := range items {
		disabled[j] = items[j].Disabled
	}
	return posKey(ingredientPos(disabled, i))
}

// mergeOrdered is the shared two-pass merge over one ordered collection.
// keyAt computes an entry's merge key in the context of its own list; an
// empty key means the entry never matches and falls through to the retention
// rule. combine produces the output value for a matched pair.
func mergeOrdered[T any](persisted, live []T,
	keyAt func(items []T, i int) string,
	isDisabled func(T) bool,
	keepAllLocal bool,
	combine func(p, l T) T,
) []T {
	liveByKey := make(map[string]int, len(live))
	for i := range live {
		k := keyAt(live, i)
		if k == "" {
			continue
		}
		if _, dup := liveByKey[k]; !dup {
			liveByKey[k] = i
		}
	}

	used := make([]bool, len(live))
	out := make([]T, 0, len(persisted)+len(live))

	for i := range persisted {
		p := persisted[i]
		if k := keyAt(persisted, i); k != "" {
			if li, ok := liveByKey[k]; ok && !used[li] {
				used[li] = true
				out = append(out, combine(p, live[li]))
				continue
			}
		}
		if keepAllLocal || isDisabled(p) {
			out = append(out, p)
		}
	}

	for i := range live {
		if !used[i] {
			out = append(out, live[i])
		}
	}
	return out
}
