// Package telemetry collects reconcile-cycle statistics and writes them to
// structured logs and CSV.
package telemetry

import "log/slog"

// CycleStats is one reconcile/apply cycle's outcome.
type CycleStats struct {
	Cycle int    `csv:"cycle"`
	Mode  string `csv:"mode"` // "load" or "persist"

	Applied int `csv:"applied"`

	GroupsUpdated  int `csv:"groups_updated"`
	GroupsInserted int `csv:"groups_inserted"`
	GroupsRemoved  int `csv:"groups_removed"`

	IngredientsUpdated  int `csv:"ingredients_updated"`
	IngredientsInserted int `csv:"ingredients_inserted"`
	IngredientsRemoved  int `csv:"ingredients_removed"`

	TargetsMissed   int `csv:"targets_missed"`
	ItemsUnresolved int `csv:"items_unresolved"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s CycleStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("cycle", s.Cycle),
		slog.String("mode", s.Mode),
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
