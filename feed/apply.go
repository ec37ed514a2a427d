package feed

import (
	"log/slog"
	"strings"

	"github.com/pthm-cable/trough/config"
)

// Stats counts what one apply pass changed. Applied is the total number of
// live rows updated, inserted, or removed.
type Stats struct {
	Applied int

	GroupsUpdated  int
	GroupsInserted int
	GroupsRemoved  int

	IngredientsUpdated  int
	IngredientsInserted int
	IngredientsRemoved  int

	TargetsMissed   int // merged entries with no live counterpart to patch
	ItemsUnresolved int // item names the host could not resolve
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("applied", s.Applied),
		slog.Int("groups_updated", s.GroupsUpdated),
		slog.Int("groups_inserted", s.GroupsInserted),
		slog.Int("groups_removed", s.GroupsRemoved),
		slog.Int("ingredients_updated", s.IngredientsUpdated),
		slog.Int("ingredients_inserted", s.IngredientsInserted),
		slog.Int("ingredients_removed", s.IngredientsRemoved),
		slog.Int("targets_missed", s.TargetsMissed),
		slog.Int("items_unresolved", s.ItemsUnresolved),
	)
}

// Applicator walks a merged configuration and patches the live state in
// place: update matching rows, insert new ones at their computed positions,
// remove rows marked disabled, then renormalize each affected list. Every
// failure is contained to the entry it occurred on and logged; Apply never
// aborts the host.
type Applicator struct {
	log *slog.Logger
}

// NewApplicator creates an applicator logging through log.
func NewApplicator(log *slog.Logger) *Applicator {
	if log == nil {
		log = slog.Default()
	}
	return &Applicator{log: log}
}

// Apply patches state to match merged. A nil state (host not ready) or nil
// config is a no-op.
func (a *Applicator) Apply(merged *config.FeedConfig, state LiveState) Stats {
	var st Stats
	if merged == nil || state == nil {
		return st
	}

	for _, an := range merged.Animals {
		a.applyAnimal(an, state, &st)
	}
	for _, m := range merged.Mixtures {
		a.applyMixture(m, state, &st)
	}
	for _, r := range merged.Recipes {
		a.applyRecipe(r, state, &st)
	}
	return st
}

// resolveItems maps space-delimited item names to host IDs. Names that do
// not resolve are dropped individually; the rest still apply.
func (a *Applicator) resolveItems(state LiveState, items string, st *Stats) []ItemID {
	names := strings.Fields(items)
	out := make([]ItemID, 0, len(names))
	for _, n := range names {
		id, ok := state.ItemID(n)
		if !ok {
			a.log.Warn("unresolved item name", "item", n)
			st.ItemsUnresolved++
			continue
		}
		out = append(out, id)
	}
	return out
}

func (a *Applicator) applyAnimal(an config.Animal, state LiveState, st *Stats) {
	ref, ok := state.Animal(an.Kind)
	if !ok {
		a.log.Warn("animal kind not present in live state", "kind", an.Kind)
		st.TargetsMissed++
		return
	}
	ref.SetMode(an.Mode)

	// Pass 1: update live groups that match by title.
	for _, g := range an.Groups {
		if g.Disabled {
			continue
		}
		idx := findGroup(ref, g.Title)
		if idx < 0 {
			continue
		}
		lg := ref.Group(idx)
		lg.Effectiveness = g.Effectiveness
		lg.Preference = g.Preference
		if g.Items != "" {
			lg.Items = a.resolveItems(state, g.Items, st)
		}
		ref.SetGroup(idx, lg)
		st.GroupsUpdated++
		st.Applied++
	}

	// Pass 2: insert new groups after as many non-disabled live rows as
	// there are non-disabled merged groups before them.
	for mi, g := range an.Groups {
		if g.Disabled || findGroup(ref, g.Title) >= 0 {
			continue
		}
		ids := a.resolveItems(state, g.Items, st)
		if len(ids) == 0 {
			a.log.Warn("skipping group insert, no resolvable items", "kind", an.Kind, "title", g.Title)
			continue
		}
		idx := clampInsert(activeGroupsBefore(an.Groups, mi), ref.GroupCount())
		ref.InsertGroup(idx, LiveGroup{
			Title:         g.Title,
			Effectiveness: g.Effectiveness,
			Preference:    g.Preference,
			Items:         ids,
		})
		st.GroupsInserted++
		st.Applied++
	}

	// Pass 3: remove disabled groups, scanning the live list in reverse so
	// earlier removals cannot shift an index we still need.
	for _, g := range an.Groups {
		if !g.Disabled {
			continue
		}
		if idx := findGroupLast(ref, g.Title); idx >= 0 {
			ref.RemoveGroup(idx)
			st.GroupsRemoved++
			st.Applied++
		}
	}

	normalizeGroups(ref)
}

func (a *Applicator) applyMixture(m config.Mixture, state LiveState, st *Stats) {
	ref, ok := state.Mixture(m.Output, m.Animal)
	if !ok {
		a.log.Warn("mixture not present in live state", "output", m.Output, "animal", m.Animal)
		st.TargetsMissed++
		return
	}

	// Pass 1: merged index i updates live index i.
	liveCount := ref.IngredientCount()
	for i, in := range m.Ingredients {
		if in.Disabled || i >= liveCount {
			continue
		}
		li := ref.Ingredient(i)
		li.Weight = in.Weight
		if in.Items != "" {
			li.Items = a.resolveItems(state, in.Items, st)
		}
		ref.SetIngredient(i, li)
		st.IngredientsUpdated++
		st.Applied++
	}

	// Pass 2: index misses become inserts, positioned after the preceding
	// non-disabled merged ingredients.
	for i, in := range m.Ingredients {
		if in.Disabled || i < liveCount {
			continue
		}
		ids := a.resolveItems(state, in.Items, st)
		if len(ids) == 0 {
			a.log.Warn("skipping mixture ingredient insert, no resolvable items",
				"output", m.Output, "animal", m.Animal, "index", i)
			continue
		}
		idx := clampInsert(activeMixBefore(m.Ingredients, i), ref.IngredientCount())
		ref.InsertIngredient(idx, LiveIngredient{Weight: in.Weight, Items: ids})
		st.IngredientsInserted++
		st.Applied++
	}

	// Pass 3: remove disabled rows by original index, highest first.
	for i := len(m.Ingredients) - 1; i >= 0; i-- {
		if !m.Ingredients[i].Disabled {
			continue
		}
		if i < ref.IngredientCount() {
			ref.RemoveIngredient(i)
			st.IngredientsRemoved++
			st.Applied++
		}
	}

	normalizeMixture(ref)
}

func (a *Applicator) applyRecipe(r config.Recipe, state LiveState, st *Stats) {
	ref, ok := state.Recipe(r.Output)
	if !ok {
		a.log.Warn("recipe not present in live state", "output", r.Output)
		st.TargetsMissed++
		return
	}

	liveCount := ref.IngredientCount()
	for i, in := range r.Ingredients {
		if in.Disabled || i >= liveCount {
			continue
		}
		li := ref.Ingredient(i)
		li.Name = in.Name
		li.Title = in.Title
		li.Min = float64(in.MinPercent) / 100
		li.Max = float64(in.MaxPercent) / 100
		li.Ratio = li.Max - li.Min
		if in.Items != "" {
			li.Items = a.resolveItems(state, in.Items, st)
		}
		ref.SetIngredient(i, li)
		st.IngredientsUpdated++
		st.Applied++
	}

	for i, in := range r.Ingredients {
		if in.Disabled || i < liveCount {
			continue
		}
		ids := a.resolveItems(state, in.Items, st)
		if len(ids) == 0 {
			a.log.Warn("skipping recipe ingredient insert, no resolvable items",
				"output", r.Output, "index", i)
			continue
		}
		li := LiveRecipeIngredient{
			Name:  in.Name,
			Title: in.Title,
			Min:   float64(in.MinPercent) / 100,
			Max:   float64(in.MaxPercent) / 100,
			Items: ids,
		}
		li.Ratio = li.Max - li.Min
		idx := clampInsert(activeRecipeBefore(r.Ingredients, i), ref.IngredientCount())
		ref.InsertIngredient(idx, li)
		st.IngredientsInserted++
		st.Applied++
	}

	for i := len(r.Ingredients) - 1; i >= 0; i-- {
		if !r.Ingredients[i].Disabled {
			continue
		}
		if i < ref.IngredientCount() {
			ref.RemoveIngredient(i)
			st.IngredientsRemoved++
			st.Applied++
		}
	}

	normalizeRecipe(ref)
}

// findGroup returns the first live index with the given title, or -1.
func findGroup(ref AnimalRef, title string) int {
	for i := 0; i < ref.GroupCount(); i++ {
		if ref.Group(i).Title == title {
			return i
		}
	}
	return -1
}

// findGroupLast is findGroup scanning from the end.
func findGroupLast(ref AnimalRef, title string) int {
	for i := ref.GroupCount() - 1; i >= 0; i-- {
		if ref.Group(i).Title == title {
			return i
		}
	}
	return -1
}

// clampInsert places a row after n live rows. Live rows are always active,
// so the position is n itself, clamped to append when the live list is
// shorter than expected.
func clampInsert(n, count int) int {
	if n > count {
		return count
	}
	return n
}

func activeGroupsBefore(groups []config.FoodGroup, i int) int {
	n := 0
	for j := 0; j < i; j++ {
		if !groups[j].Disabled {
			n++
		}
	}
	return n
}

func activeMixBefore(ins []config.MixIngredient, i int) int {
	n := 0
	for j := 0; j < i; j++ {
		if !ins[j].Disabled {
			n++
		}
	}
	return n
}

func activeRecipeBefore(ins []config.RecipeIngredient, i int) int {
	n := 0
	for j := 0; j < i; j++ {
		if !ins[j].Disabled {
			n++
		}
	}
	return n
}

func normalizeGroups(ref AnimalRef) {
	rows := make([]*LiveGroup, ref.GroupCount())
	for i := range rows {
		g := ref.Group(i)
		rows[i] = &g
	}
	if Normalize(rows) {
		for i, g := range rows {
			ref.SetGroup(i, *g)
		}
	}
}

func normalizeMixture(ref MixtureRef) {
	rows := make([]*LiveIngredient, ref.IngredientCount())
	for i := range rows {
		in := ref.Ingredient(i)
		rows[i] = &in
	}
	if Normalize(rows) {
		for i, in := range rows {
			ref.SetIngredient(i, *in)
		}
	}
}

func normalizeRecipe(ref RecipeRef) {
	rows := make([]*LiveRecipeIngredient, ref.IngredientCount())
	for i := range rows {
		in := ref.Ingredient(i)
		rows[i] = &in
	}
	if Normalize(rows) {
		for i, in := range rows {
			ref.SetIngredient(i, *in)
		}
	}
}
