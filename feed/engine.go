package feed

import (
	"log/slog"

	"github.com/pthm-cable/trough/config"
)

// Publisher broadcasts a full configuration snapshot to attached replicas.
type Publisher interface {
	Publish(cfg *config.FeedConfig)
}

// Recorder receives per-cycle apply statistics.
type Recorder interface {
	RecordCycle(mode string, stats Stats)
}

// Engine ties the session lifecycle together. It holds the current merged
// configuration between the load and persist checkpoints; everything else is
// rebuilt fresh each cycle. The host invokes it from a single lifecycle
// phase, so no locking is needed.
type Engine struct {
	path  string
	state LiveState
	log   *slog.Logger
	apply *Applicator

	pub Publisher
	rec Recorder

	current *config.FeedConfig
}

// NewEngine creates an engine persisting to path and patching state.
func NewEngine(path string, state LiveState, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		path:  path,
		state: state,
		log:   log,
		apply: NewApplicator(log),
	}
}

// SetPublisher attaches a replication channel. The publisher receives the
// merged configuration after every apply.
func (e *Engine) SetPublisher(p Publisher) { e.pub = p }

// SetRecorder attaches a telemetry sink.
func (e *Engine) SetRecorder(r Recorder) { e.rec = r }

// Current returns the session's merged configuration, nil before the first
// SessionLoaded.
func (e *Engine) Current() *config.FeedConfig { return e.current }

// SessionLoaded runs the cold-start cycle: snapshot the live state, load the
// persisted configuration, merge keeping every local-only entry (custom
// additions do not exist in the live state yet and must survive until Apply
// inserts them), apply, persist, broadcast. An unreadable persisted file
// degrades to "no persisted configuration" with a warning.
func (e *Engine) SessionLoaded() error {
	live := Snapshot(e.state)

	persisted, err := config.Load(e.path)
	if err != nil {
		e.log.Warn("could not load persisted feed config, starting from live state", "path", e.path, "error", err)
		persisted = nil
	}

	merged := Merge(persisted, live, true)
	stats := e.apply.Apply(merged, e.state)
	e.current = merged

	e.log.Info("feed session loaded", "stats", stats)
	if e.rec != nil {
		e.rec.RecordCycle("load", stats)
	}
	if e.pub != nil {
		e.pub.Publish(merged)
	}

	if err := merged.WriteYAML(e.path); err != nil {
		e.log.Warn("could not persist feed config", "path", e.path, "error", err)
		return err
	}
	return nil
}

// SessionPersist runs the steady-state cycle: re-snapshot the live state,
// merge against the session configuration keeping only disabled local-only
// entries, persist. The live state is not patched here; it is already
// authoritative.
func (e *Engine) SessionPersist() error {
	live := Snapshot(e.state)
	merged := Merge(e.current, live, false)
	e.current = merged

	if err := merged.WriteYAML(e.path); err != nil {
		e.log.Warn("could not persist feed config", "path", e.path, "error", err)
		return err
	}
	e.log.Info("feed session persisted", "animals", len(merged.Animals),
		"mixtures", len(merged.Mixtures), "recipes", len(merged.Recipes))
	return nil
}
