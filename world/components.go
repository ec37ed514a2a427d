package world

import (
	"github.com/pthm-cable/trough/config"
	"github.com/pthm-cable/trough/feed"
)

// FeedProfile is the component holding one animal kind's live feeding table.
type FeedProfile struct {
	Kind   string
	Mode   config.FeedMode
	Groups []feed.LiveGroup
}

// MixtureBin is the component holding one live mixture.
type MixtureBin struct {
	Output      string
	Animal      string
	Ingredients []feed.LiveIngredient
}

// RecipeCard is the component holding one live recipe.
type RecipeCard struct {
	Output      string
	Ingredients []feed.LiveRecipeIngredient
}
