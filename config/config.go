// Package config defines the feeding configuration shape and its YAML store.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// FeedMode selects how an animal works through its food groups.
type FeedMode string

const (
	// FeedSerial consumes groups strictly in list order.
	FeedSerial FeedMode = "serial"
	// FeedParallel distributes consumption across groups by preference.
	FeedParallel FeedMode = "parallel"
)

// FeedConfig is the complete user-editable feeding configuration.
// Slice order is significant everywhere: it drives display and priority in
// the live state, and for mixture/recipe ingredients it is the identity.
type FeedConfig struct {
	Animals    []Animal    `yaml:"animals" json:"animals"`
	Mixtures   []Mixture   `yaml:"mixtures" json:"mixtures"`
	Recipes    []Recipe    `yaml:"recipes" json:"recipes"`
	Supplement *Supplement `yaml:"supplement,omitempty" json:"supplement,omitempty"`
}

// Animal configures the feeding table for one animal kind.
type Animal struct {
	Kind   string      `yaml:"kind" json:"kind"` // host kind name, merge key
	Mode   FeedMode    `yaml:"mode" json:"mode"`
	Groups []FoodGroup `yaml:"groups" json:"groups"`
}

// FoodGroup is one feeding option: a set of items and its weights.
type FoodGroup struct {
	Title         string  `yaml:"title" json:"title"` // merge key within the animal
	Effectiveness float64 `yaml:"effectiveness" json:"effectiveness"`
	Preference    float64 `yaml:"preference" json:"preference"` // parallel mode only
	Items         string  `yaml:"items" json:"items"`           // space-delimited item names
	Disabled      bool    `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Notes         string  `yaml:"notes,omitempty" json:"-"`
}

// Mixture is a blended feed, keyed by output name plus target animal.
type Mixture struct {
	Output      string          `yaml:"output" json:"output"`
	Animal      string          `yaml:"animal" json:"animal"`
	Ingredients []MixIngredient `yaml:"ingredients" json:"ingredients"`
}

// MixIngredient has no name of its own; its list position is its identity.
type MixIngredient struct {
	Weight   float64 `yaml:"weight" json:"weight"` // relative, renormalized on apply
	Items    string  `yaml:"items" json:"items"`
	Disabled bool    `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Notes    string  `yaml:"notes,omitempty" json:"-"`
}

// Recipe is a prepared feed, keyed by output name.
type Recipe struct {
	Output      string             `yaml:"output" json:"output"`
	Ingredients []RecipeIngredient `yaml:"ingredients" json:"ingredients"`
}

// RecipeIngredient is positionally keyed like MixIngredient. Name and Title
// are informational; the live ratio is derived from the percent bounds.
type RecipeIngredient struct {
	Name       string `yaml:"name" json:"name"`
	Title      string `yaml:"title" json:"title"`
	MinPercent int    `yaml:"min_percent" json:"min_percent"` // 0..100
	MaxPercent int    `yaml:"max_percent" json:"max_percent"` // 0..100
	Items      string `yaml:"items" json:"items"`
	Disabled   bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Notes      string `yaml:"notes,omitempty" json:"-"`
}

// Supplement is the global feed supplement setting, merged independently of
// the three collections. Absent in a file means "use the default".
type Supplement struct {
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
	Disabled   bool    `yaml:"disabled" json:"disabled"`
}

// DefaultSupplement returns the supplement used when none was persisted.
func DefaultSupplement() *Supplement {
	return &Supplement{Multiplier: 1.0, Disabled: true}
}

// Default returns the embedded stock configuration.
func Default() *FeedConfig {
	cfg := &FeedConfig{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	cfg.sanitize()
	return cfg
}

// Load reads a feeding configuration from a YAML file. A missing file is a
// normal first run and returns (nil, nil). Malformed entries are dropped with
// a warning; the rest of the document still loads.
func Load(path string) (*FeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &FeedConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.sanitize()
	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *FeedConfig) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// sanitize drops entries whose merge key fields are missing. An entry without
// its key can never be matched or round-tripped, so nothing downstream has to
// handle empty keys.
func (c *FeedConfig) sanitize() {
	animals := c.Animals[:0]
	for _, a := range c.Animals {
		if a.Kind == "" {
			slog.Warn("dropping animal entry with empty kind")
			continue
		}
		if a.Mode != FeedSerial && a.Mode != FeedParallel {
			a.Mode = FeedSerial
		}
		groups := a.Groups[:0]
		for _, g := range a.Groups {
			if g.Title == "" {
				slog.Warn("dropping food group with empty title", "kind", a.Kind)
				continue
			}
			groups = append(groups, g)
		}
		a.Groups = groups
		animals = append(animals, a)
	}
	c.Animals = animals

	mixtures := c.Mixtures[:0]
	for _, m := range c.Mixtures {
		if m.Output == "" || m.Animal == "" {
			slog.Warn("dropping mixture entry with empty key", "output", m.Output, "animal", m.Animal)
			continue
		}
		mixtures = append(mixtures, m)
	}
	c.Mixtures = mixtures

	recipes := c.Recipes[:0]
	for _, r := range c.Recipes {
		if r.Output == "" {
			slog.Warn("dropping recipe entry with empty output")
			continue
		}
		recipes = append(recipes, r)
	}
	c.Recipes = recipes
}

// Clone returns a deep copy.
func (c *FeedConfig) Clone() *FeedConfig {
	if c == nil {
		return nil
	}
	out := &FeedConfig{
		Animals:  make([]Animal, len(c.Animals)),
		Mixtures: make([]Mixture, len(c.Mixtures)),
		Recipes:  make([]Recipe, len(c.Recipes)),
	}
	for i, a := range c.Animals {
		a.Groups = append([]FoodGroup(nil), a.Groups...)
		out.Animals[i] = a
	}
	for i, m := range c.Mixtures {
		m.Ingredients = append([]MixIngredient(nil), m.Ingredients...)
		out.Mixtures[i] = m
	}
	for i, r := range c.Recipes {
		r.Ingredients = append([]RecipeIngredient(nil), r.Ingredients...)
		out.Recipes[i] = r
	}
	if c.Supplement != nil {
		s := *c.Supplement
		out.Supplement = &s
	}
	return out
}
