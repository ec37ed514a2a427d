package feed

import (
	"math"
	"testing"
)

const eps = 1e-6

func groupsWith(weights ...float64) []*LiveGroup {
	out := make([]*LiveGroup, len(weights))
	for i, w := range weights {
		out[i] = &LiveGroup{Effectiveness: w}
	}
	return out
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		weights     []float64
		wantChanged bool
		want        []float64
	}{
		{"empty", nil, false, nil},
		{"single", []float64{0.4}, true, []float64{1.0}},
		{"already normalized", []float64{0.25, 0.75}, true, []float64{0.25, 0.75}},
		{"scales down", []float64{2, 2}, true, []float64{0.5, 0.5}},
		{"scales up", []float64{0.1, 0.3}, true, []float64{0.25, 0.75}},
		{"all zero", []float64{0, 0, 0}, false, []float64{0, 0, 0}},
		{"negative sum", []float64{-1, 0.5}, false, []float64{-1, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := groupsWith(tt.weights...)
			changed := Normalize(rows)
			if changed != tt.wantChanged {
				t.Errorf("Normalize changed = %v, want %v", changed, tt.wantChanged)
			}
			for i, g := range rows {
				if math.Abs(g.Effectiveness-tt.want[i]) > eps {
					t.Errorf("weight[%d] = %v, want %v", i, g.Effectiveness, tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeSumsToOne(t *testing.T) {
	rows := groupsWith(0.8, 0.5, 1.7, 0.02)
	if !Normalize(rows) {
		t.Fatal("expected change")
	}
	sum := 0.0
	for _, g := range rows {
		sum += g.Effectiveness
	}
	if math.Abs(sum-1.0) > eps {
		t.Errorf("sum = %v, want 1.0", sum)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	rows := groupsWith(0.8, 0.5, 1.7)
	Normalize(rows)
	first := make([]float64, len(rows))
	for i, g := range rows {
		first[i] = g.Effectiveness
	}

	Normalize(rows)
	for i, g := range rows {
		if math.Abs(g.Effectiveness-first[i]) > eps {
			t.Errorf("weight[%d] drifted from %v to %v", i, first[i], g.Effectiveness)
		}
	}
}

func TestNormalizeMixtureAndRecipeShares(t *testing.T) {
	ins := []*LiveIngredient{{Weight: 0.5}, {Weight: 0.2}}
	if !Normalize(ins) {
		t.Fatal("expected change")
	}
	if math.Abs(ins[0].Weight-0.714285) > 1e-3 || math.Abs(ins[1].Weight-0.285714) > 1e-3 {
		t.Errorf("mixture weights = %v, %v", ins[0].Weight, ins[1].Weight)
	}

	rs := []*LiveRecipeIngredient{{Ratio: 0.3}, {Ratio: 0.2}, {Ratio: 0.1}}
	if !Normalize(rs) {
		t.Fatal("expected change")
	}
	if math.Abs(rs[0].Ratio-0.5) > eps {
		t.Errorf("ratio[0] = %v, want 0.5", rs[0].Ratio)
	}
}
