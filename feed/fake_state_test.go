package feed

import (
	"slices"

	"github.com/pthm-cable/trough/config"
)

// fakeState is an in-memory LiveState used across the package tests.
type fakeState struct {
	animals  []*fakeAnimal
	mixtures []*fakeMixture
	recipes  []*fakeRecipe
	ids      map[string]ItemID
	names    map[ItemID]string
}

func newFakeState(items ...string) *fakeState {
	s := &fakeState{
		ids:   make(map[string]ItemID),
		names: make(map[ItemID]string),
	}
	for i, n := range items {
		id := ItemID(i)
		s.ids[n] = id
		s.names[id] = n
	}
	return s
}

func (s *fakeState) item(name string) ItemID {
	id, ok := s.ids[name]
	if !ok {
		panic("fakeState: unknown item " + name)
	}
	return id
}

func (s *fakeState) addAnimal(kind string, mode config.FeedMode, groups ...LiveGroup) *fakeAnimal {
	a := &fakeAnimal{kind: kind, mode: mode, groups: groups}
	s.animals = append(s.animals, a)
	return a
}

func (s *fakeState) addMixture(output, animal string, ins ...LiveIngredient) *fakeMixture {
	m := &fakeMixture{output: output, animal: animal, ins: ins}
	s.mixtures = append(s.mixtures, m)
	return m
}

func (s *fakeState) addRecipe(output string, ins ...LiveRecipeIngredient) *fakeRecipe {
	r := &fakeRecipe{output: output, ins: ins}
	s.recipes = append(s.recipes, r)
	return r
}

func (s *fakeState) Animal(kind string) (AnimalRef, bool) {
	for _, a := range s.animals {
		if a.kind == kind {
			return a, true
		}
	}
	return nil, false
}

func (s *fakeState) Animals() []AnimalRef {
	out := make([]AnimalRef, len(s.animals))
	for i, a := range s.animals {
		out[i] = a
	}
	return out
}

func (s *fakeState) Mixture(output, animal string) (MixtureRef, bool) {
	for _, m := range s.mixtures {
		if m.output == output && m.animal == animal {
			return m, true
		}
	}
	return nil, false
}

func (s *fakeState) Mixtures() []MixtureRef {
	out := make([]MixtureRef, len(s.mixtures))
	for i, m := range s.mixtures {
		out[i] = m
	}
	return out
}

func (s *fakeState) Recipe(output string) (RecipeRef, bool) {
	for _, r := range s.recipes {
		if r.output == output {
			return r, true
		}
	}
	return nil, false
}

func (s *fakeState) Recipes() []RecipeRef {
	out := make([]RecipeRef, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r
	}
	return out
}

func (s *fakeState) ItemID(name string) (ItemID, bool) {
	id, ok := s.ids[name]
	return id, ok
}

func (s *fakeState) ItemName(id ItemID) (string, bool) {
	n, ok := s.names[id]
	return n, ok
}

type fakeAnimal struct {
	kind   string
	mode   config.FeedMode
	groups []LiveGroup
}

func (a *fakeAnimal) Kind() string                  { return a.kind }
func (a *fakeAnimal) Mode() config.FeedMode         { return a.mode }
func (a *fakeAnimal) SetMode(m config.FeedMode)     { a.mode = m }
func (a *fakeAnimal) GroupCount() int               { return len(a.groups) }
func (a *fakeAnimal) Group(i int) LiveGroup         { return a.groups[i] }
func (a *fakeAnimal) SetGroup(i int, g LiveGroup)   { a.groups[i] = g }
func (a *fakeAnimal) RemoveGroup(i int)             { a.groups = slices.Delete(a.groups, i, i+1) }
func (a *fakeAnimal) InsertGroup(i int, g LiveGroup) {
	a.groups = slices.Insert(a.groups, i, g)
}

type fakeMixture struct {
	output string
	animal string
	ins    []LiveIngredient
}

func (m *fakeMixture) Output() string                      { return m.output }
func (m *fakeMixture) Animal() string                      { return m.animal }
func (m *fakeMixture) IngredientCount() int                { return len(m.ins) }
func (m *fakeMixture) Ingredient(i int) LiveIngredient     { return m.ins[i] }
func (m *fakeMixture) SetIngredient(i int, in LiveIngredient) { m.ins[i] = in }
func (m *fakeMixture) RemoveIngredient(i int)              { m.ins = slices.Delete(m.ins, i, i+1) }
func (m *fakeMixture) InsertIngredient(i int, in LiveIngredient) {
	m.ins = slices.Insert(m.ins, i, in)
}

type fakeRecipe struct {
	output string
	ins    []LiveRecipeIngredient
}

func (r *fakeRecipe) Output() string                         { return r.output }
func (r *fakeRecipe) IngredientCount() int                   { return len(r.ins) }
func (r *fakeRecipe) Ingredient(i int) LiveRecipeIngredient  { return r.ins[i] }
func (r *fakeRecipe) SetIngredient(i int, in LiveRecipeIngredient) { r.ins[i] = in }
func (r *fakeRecipe) RemoveIngredient(i int)                 { r.ins = slices.Delete(r.ins, i, i+1) }
func (r *fakeRecipe) InsertIngredient(i int, in LiveRecipeIngredient) {
	r.ins = slices.Insert(r.ins, i, in)
}
