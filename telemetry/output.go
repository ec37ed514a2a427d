package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager appends cycle stats to cycles.csv in an output directory.
// A nil manager discards everything, so callers don't need to branch on
// whether output is enabled.
type OutputManager struct {
	dir       string
	cycleFile *os.File

	cycleHeaderWritten bool
}

// NewOutputManager creates the output directory and cycles.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "cycles.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating cycles.csv: %w", err)
	}
	return &OutputManager{dir: dir, cycleFile: f}, nil
}

// WriteCycle appends one cycle record to cycles.csv.
func (om *OutputManager) WriteCycle(stats CycleStats) error {
	if om == nil {
		return nil
	}

	records := []CycleStats{stats}
	if !om.cycleHeaderWritten {
		if err := gocsv.Marshal(records, om.cycleFile); err != nil {
			return fmt.Errorf("writing cycle stats: %w", err)
		}
		om.cycleHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.cycleFile); err != nil {
		return fmt.Errorf("writing cycle stats: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.cycleFile.Close()
}
