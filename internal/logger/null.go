package logger

import "github.com/mesh-intelligence/expbox/pkg/types"

// NullLogger discards every write. It exists so caller code need not branch
// on whether logging is enabled; no operation can fail.
type NullLogger struct{}

// NewNull returns the no-op backend.
func NewNull() *NullLogger {
	return &NullLogger{}
}

// LogMetrics discards the observation.
func (*NullLogger) LogMetrics(map[string]float64, int) error { return nil }

// LogFigure discards the figure.
func (*NullLogger) LogFigure(types.Figure, string) error { return nil }

// LogArtifact discards the artifact.
func (*NullLogger) LogArtifact(string) error { return nil }

// Close does nothing.
func (*NullLogger) Close() error { return nil }
