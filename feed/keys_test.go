package feed

import "testing"

func TestIngredientPos(t *testing.T) {
	tests := []struct {
		name     string
		disabled []bool
		i        int
		want     int
	}{
		{"first entry", []bool{false, false, false}, 0, 1},
		{"second entry", []bool{false, false, false}, 1, 2},
		{"after disabled", []bool{false, true, false}, 2, 2},
		{"all preceding disabled", []bool{true, true, false}, 2, 1},
		{"disabled entry itself still keyed by predecessors", []bool{false, true, false}, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ingredientPos(tt.disabled, tt.i); got != tt.want {
				t.Errorf("ingredientPos(%v, %d) = %d, want %d", tt.disabled, tt.i, got, tt.want)
			}
		})
	}
}

func TestMixtureKey(t *testing.T) {
	if got := mixtureKey("silage", "cow"); got != "silage_cow" {
		t.Errorf("mixtureKey = %q", got)
	}
}
