package logger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/expbox/pkg/types"
)

// TrackerLogger forwards metric and figure writes verbatim to an external
// tracker client. Call ordering is delegated to the client. Artifacts are
// outside the narrow client surface and are dropped.
type TrackerLogger struct {
	client types.TrackerClient
	runID  string
	closed bool
}

// NewTracker wraps the given client. A nil client (tracker not installed or
// not configured) fails with ErrBackendUnavailable; callers that want no
// logging must pick the null backend explicitly.
func NewTracker(client types.TrackerClient) (*TrackerLogger, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: no tracker client configured", types.ErrBackendUnavailable)
	}

	runID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating run id: %w", err)
	}
	return &TrackerLogger{client: client, runID: runID.String()}, nil
}

// RunID returns the identifier minted for this tracker run. Recorded in the
// experiment metadata so the run can be correlated later.
func (l *TrackerLogger) RunID() string {
	return l.runID
}

// LogMetrics forwards the observation to the tracker.
func (l *TrackerLogger) LogMetrics(metrics map[string]float64, step int) error {
	if l.closed {
		return types.ErrLoggerClosed
	}
	return l.client.Log(metrics, step)
}

// LogFigure forwards the figure to the tracker.
func (l *TrackerLogger) LogFigure(fig types.Figure, label string) error {
	if l.closed {
		return types.ErrLoggerClosed
	}
	return l.client.LogImage(label, fig)
}

// LogArtifact is not supported by the narrow tracker surface.
func (l *TrackerLogger) LogArtifact(string) error {
	if l.closed {
		return types.ErrLoggerClosed
	}
	return nil
}

// Close ends the tracker run. Idempotent.
func (l *TrackerLogger) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	return l.client.Close()
}
