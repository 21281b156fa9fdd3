// Package logger implements the metric/figure logging backends: null, file,
// and tracker. Backends are chosen once at context construction; caller code
// drives the types.Logger interface without branching on the active backend.
// See docs/ARCHITECTURE.md § Logger Backends.
package logger

import (
	"fmt"

	"github.com/mesh-intelligence/expbox/pkg/types"
)

// New constructs the backend named by kind. The tracker backend requires a
// client; a nil client yields ErrBackendUnavailable rather than a silent
// downgrade to the null backend.
func New(kind string, paths types.BoxPaths, client types.TrackerClient) (types.Logger, error) {
	switch kind {
	case "", types.LoggerNone:
		return NewNull(), nil
	case types.LoggerFile:
		return NewFile(paths)
	case types.LoggerTracker:
		return NewTracker(client)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownLoggerKind, kind)
	}
}
