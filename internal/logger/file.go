package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mesh-intelligence/expbox/internal/ids"
	"github.com/mesh-intelligence/expbox/pkg/types"
)

// Hook overridable in tests.
var now = time.Now

// FileLogger writes metrics as JSONL records to logs/metrics.jsonl and
// figures as PNG files into the logs directory. Completely local; no
// external services involved.
//
// The metrics log is append-only: one record per LogMetrics call, flushed
// to the OS on every write, prior lines never rewritten. Append order
// defines the effective metric sequence.
type FileLogger struct {
	paths   types.BoxPaths
	metrics *os.File
	closed  bool
}

// NewFile opens (or creates) the metrics log in append mode. The logs
// directory must already be materialized.
func NewFile(paths types.BoxPaths) (*FileLogger, error) {
	f, err := os.OpenFile(paths.MetricsPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening metrics log: %w", err)
	}
	return &FileLogger{paths: paths, metrics: f}, nil
}

// LogMetrics appends one JSONL record with the metric mapping, the
// caller-supplied step, and the wall-clock write timestamp.
func (l *FileLogger) LogMetrics(metrics map[string]float64, step int) error {
	if l.closed {
		return types.ErrLoggerClosed
	}

	record := types.MetricRecord{
		Step:      step,
		Timestamp: now().Format(time.RFC3339),
		Metrics:   metrics,
	}
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding metric record: %w", err)
	}
	if _, err := l.metrics.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("appending metric record: %w", err)
	}
	return nil
}

// LogFigure renders the figure to PNG and writes logs/<label>.png,
// overwriting any previous image with the same label. Labels become file
// names, so they are screened the same way identifiers are; a label with
// path separators cannot escape the logs directory.
func (l *FileLogger) LogFigure(fig types.Figure, label string) error {
	if l.closed {
		return types.ErrLoggerClosed
	}

	name, err := ids.EnsureSafe(label)
	if err != nil {
		return fmt.Errorf("figure label: %w", err)
	}

	data, err := fig.PNG()
	if err != nil {
		return fmt.Errorf("rendering figure %q: %w", label, err)
	}
	if !strings.HasSuffix(name, ".png") {
		name += ".png"
	}
	if err := os.WriteFile(filepath.Join(l.paths.Logs, name), data, 0o644); err != nil {
		return fmt.Errorf("writing figure %q: %w", label, err)
	}
	return nil
}

// LogArtifact copies the file at path into the box artifacts directory,
// keeping its base name.
func (l *FileLogger) LogArtifact(path string) error {
	if l.closed {
		return types.ErrLoggerClosed
	}

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening artifact: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(l.paths.Artifacts, filepath.Base(path)))
	if err != nil {
		return fmt.Errorf("creating artifact copy: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copying artifact: %w", err)
	}
	return dst.Close()
}

// Close flushes and closes the metrics log. Idempotent.
func (l *FileLogger) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if err := l.metrics.Sync(); err != nil {
		l.metrics.Close()
		return fmt.Errorf("syncing metrics log: %w", err)
	}
	if err := l.metrics.Close(); err != nil {
		return fmt.Errorf("closing metrics log: %w", err)
	}
	return nil
}
