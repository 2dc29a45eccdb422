package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/reefdive/config"
)

// csvSink is one CSV file that writes its header on first use.
type csvSink struct {
	file          *os.File
	headerWritten bool
}

func openSink(dir, name string) (*csvSink, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvSink{file: f}, nil
}

// writeRecords marshals records, with headers only on the first call.
func writeRecords[T any](s *csvSink, records []T) error {
	return writeCSV(s.file, &s.headerWritten, records)
}

func writeCSV[T any](w io.Writer, headerWritten *bool, records []T) error {
	if !*headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, w); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	// Subsequent writes skip headers
	return gocsv.MarshalWithoutHeaders(records, w)
}

// OutputManager handles session output with CSV logging.
type OutputManager struct {
	dir     string
	session *csvSink
	events  *csvSink
	perf    *csvSink
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	var err error
	if om.session, err = openSink(dir, "session.csv"); err != nil {
		return nil, err
	}
	if om.events, err = openSink(dir, "events.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.perf, err = openSink(dir, "perf.csv"); err != nil {
		om.Close()
		return nil, err
	}
	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSession writes a window stats record to session.csv.
func (om *OutputManager) WriteSession(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.session, []WindowStats{stats}); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// WriteEvents appends events to events.csv.
func (om *OutputManager) WriteEvents(events []Event) error {
	if om == nil || len(events) == 0 {
		return nil
	}
	records := make([]EventRecord, len(events))
	for i, e := range events {
		records[i] = e.Record()
	}
	if err := writeRecords(om.events, records); err != nil {
		return fmt.Errorf("writing events: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.perf, []PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, s := range []*csvSink{om.session, om.events, om.perf} {
		if s == nil || s.file == nil {
			continue
		}
		if err := s.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
