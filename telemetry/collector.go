package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/trough/feed"
)

// Collector accumulates cycle statistics and forwards them to an optional
// OutputManager. It implements feed.Recorder.
type Collector struct {
	log    *slog.Logger
	out    *OutputManager
	cycles []CycleStats
}

// NewCollector creates a collector. out may be nil (no CSV output).
func NewCollector(out *OutputManager, log *slog.Logger) *Collector {
	if log == nil {
		log = slog.Default()
	}
	return &Collector{log: log, out: out}
}

// RecordCycle records one reconcile/apply cycle.
func (c *Collector) RecordCycle(mode string, stats feed.Stats) {
	cs := CycleStats{
		Cycle:               len(c.cycles) + 1,
		Mode:                mode,
		Applied:             stats.Applied,
		GroupsUpdated:       stats.GroupsUpdated,
		GroupsInserted:      stats.GroupsInserted,
		GroupsRemoved:       stats.GroupsRemoved,
		IngredientsUpdated:  stats.IngredientsUpdated,
		IngredientsInserted: stats.IngredientsInserted,
		IngredientsRemoved:  stats.IngredientsRemoved,
		TargetsMissed:       stats.TargetsMissed,
		ItemsUnresolved:     stats.ItemsUnresolved,
	}
	c.cycles = append(c.cycles, cs)

	if err := c.out.WriteCycle(cs); err != nil {
		c.log.Warn("could not write cycle stats", "error", err)
	}
}

// Cycles returns all recorded cycles in order.
func (c *Collector) Cycles() []CycleStats { return c.cycles }

// MeanApplied returns the mean number of rows applied per cycle.
func (c *Collector) MeanApplied() float64 {
	if len(c.cycles) == 0 {
		return 0
	}
	vals := make([]float64, len(c.cycles))
	for i, cs := range c.cycles {
		vals[i] = float64(cs.Applied)
	}
	return stat.Mean(vals, nil)
}
