package feed

import (
	"testing"

	"github.com/pthm-cable/trough/config"
)

func TestSnapshotProjectsLiveState(t *testing.T) {
	state := newFakeState("grass", "clover", "wheat")
	state.addAnimal("cow", config.FeedParallel,
		LiveGroup{Title: "Fresh", Effectiveness: 0.6, Preference: 0.7,
			Items: []ItemID{state.item("grass"), state.item("clover")}},
		LiveGroup{Title: "Grain", Effectiveness: 0.4, Preference: 0.3,
			Items: []ItemID{state.item("wheat")}},
	)
	state.addMixture("silage", "cow",
		LiveIngredient{Weight: 0.6, Items: []ItemID{state.item("grass")}},
	)
	state.addRecipe("layer_feed",
		LiveRecipeIngredient{Name: "base", Title: "Base", Min: 0.4, Max: 0.7, Ratio: 0.3,
			Items: []ItemID{state.item("wheat")}},
	)

	cfg := Snapshot(state)

	if len(cfg.Animals) != 1 || cfg.Animals[0].Kind != "cow" || cfg.Animals[0].Mode != config.FeedParallel {
		t.Fatalf("animals = %+v", cfg.Animals)
	}
	g := cfg.Animals[0].Groups[0]
	if g.Items != "grass clover" {
		t.Errorf("items = %q, want names joined by spaces", g.Items)
	}
	if g.Effectiveness != 0.6 || g.Preference != 0.7 {
		t.Errorf("group = %+v", g)
	}

	if len(cfg.Mixtures) != 1 || cfg.Mixtures[0].Output != "silage" || cfg.Mixtures[0].Animal != "cow" {
		t.Fatalf("mixtures = %+v", cfg.Mixtures)
	}

	in := cfg.Recipes[0].Ingredients[0]
	if in.MinPercent != 40 || in.MaxPercent != 70 {
		t.Errorf("percent bounds = %d..%d, want 40..70", in.MinPercent, in.MaxPercent)
	}
}

func TestSnapshotNilStateIsEmptyConfig(t *testing.T) {
	cfg := Snapshot(nil)
	if cfg == nil {
		t.Fatal("want empty config, got nil")
	}
	if len(cfg.Animals) != 0 || len(cfg.Mixtures) != 0 || len(cfg.Recipes) != 0 {
		t.Errorf("cfg = %+v, want empty", cfg)
	}
}

func TestSnapshotDropsUnknownItemIDs(t *testing.T) {
	state := newFakeState("grass")
	state.addAnimal("cow", config.FeedSerial,
		LiveGroup{Title: "A", Effectiveness: 1.0, Items: []ItemID{state.item("grass"), ItemID(99)}},
	)

	cfg := Snapshot(state)
	if got := cfg.Animals[0].Groups[0].Items; got != "grass" {
		t.Errorf("items = %q, want stale ID dropped", got)
	}
}

func TestSnapshotDoesNotMutateState(t *testing.T) {
	state := newFakeState("grass")
	cow := state.addAnimal("cow", config.FeedSerial,
		LiveGroup{Title: "A", Effectiveness: 0.5, Items: []ItemID{state.item("grass")}},
	)

	Snapshot(state)
	if len(cow.groups) != 1 || cow.groups[0].Effectiveness != 0.5 {
		t.Errorf("live state changed: %+v", cow.groups)
	}
}
