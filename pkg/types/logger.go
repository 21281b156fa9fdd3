// Logger backend interface and collaborator contracts.
// See docs/ARCHITECTURE.md § Logger Backends.
package types

// Logger backend names, selected at context construction time.
const (
	LoggerNone    = "none"
	LoggerFile    = "file"
	LoggerTracker = "tracker"
)

// Logger is the polymorphic sink for metric and figure writes during a run.
// Within one context, writes occur in exact call order. Errors are never
// swallowed; they propagate to the caller immediately.
type Logger interface {
	// LogMetrics records one observation: a mapping of metric name to value
	// at the given step. Repeated names across steps are the normal case;
	// this is a time series, not a key-value store.
	LogMetrics(metrics map[string]float64, step int) error

	// LogFigure records a rendered figure under the given label.
	// A repeated label overwrites the previous image.
	LogFigure(fig Figure, label string) error

	// LogArtifact records a file artifact located at path.
	LogArtifact(path string) error

	// Close flushes and releases backend resources. Writes after Close
	// return ErrLoggerClosed where the backend can fail at all.
	Close() error
}

// Figure is the figure-rendering capability consumed by logger backends.
// Implementations render themselves to PNG bytes.
type Figure interface {
	PNG() ([]byte, error)
}

// TrackerClient is the narrow surface of an external experiment tracker
// consumed by the tracker backend. The client is expected to preserve call
// order; the backend forwards calls verbatim.
type TrackerClient interface {
	// Log forwards one metrics observation to the tracker.
	Log(metrics map[string]float64, step int) error

	// LogImage forwards a figure to the tracker under the given label.
	LogImage(label string, fig Figure) error

	// Close ends the tracker run.
	Close() error
}

// MetricRecord is one line of the metrics.jsonl log: the logged mapping,
// the caller-supplied step, and the wall-clock write timestamp. The file is
// append-only; append order defines the effective sequence.
type MetricRecord struct {
	Step      int                `json:"step"`
	Timestamp string             `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics"`
}
