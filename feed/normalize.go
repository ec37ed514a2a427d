package feed

import "gonum.org/v1/gonum/floats"

// Weighted is anything carrying a proportional share that can be rescaled.
type Weighted interface {
	Share() float64
	SetShare(v float64)
}

// Normalize rescales the entries' shares in place so they sum to 1.0.
// An empty list or a non-positive sum is left untouched and reported as
// unchanged. Idempotent: a second call divides by a sum of exactly 1.
func Normalize[T Weighted](entries []T) bool {
	if len(entries) == 0 {
		return false
	}
	vals := make([]float64, len(entries))
	for i, e := range entries {
		vals[i] = e.Share()
	}
	sum := floats.Sum(vals)
	if sum <= 0 {
		return false
	}
	floats.Scale(1/sum, vals)
	for i, e := range entries {
		e.SetShare(vals[i])
	}
	return true
}

// Share implements Weighted over a group's effectiveness weight.
func (g *LiveGroup) Share() float64 { return g.Effectiveness }

// SetShare implements Weighted.
func (g *LiveGroup) SetShare(v float64) { g.Effectiveness = v }

// Share implements Weighted over a mixture ingredient's weight.
func (in *LiveIngredient) Share() float64 { return in.Weight }

// SetShare implements Weighted.
func (in *LiveIngredient) SetShare(v float64) { in.Weight = v }

// Share implements Weighted over a recipe ingredient's derived ratio.
func (in *LiveRecipeIngredient) Share() float64 { return in.Ratio }

// SetShare implements Weighted.
func (in *LiveRecipeIngredient) SetShare(v float64) { in.Ratio = v }
