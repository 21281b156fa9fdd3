// Package logging configures the structured diagnostics logger used by the
// expbox CLI. This is operator-facing logging only; it is unrelated to the
// experiment metric backends in internal/logger.
package logging

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLogLevel overrides the default level when the --log-level flag is unset.
const EnvLogLevel = "EXPBOX_LOG_LEVEL"

// Logger is the shared diagnostics logger.
var Logger *log.Logger

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.WarnLevel)
}

// Configure sets the log level with precedence: flag > EXPBOX_LOG_LEVEL env
// > warn. Unrecognized levels fall back to warn.
func Configure(level string) {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	Logger.SetLevel(parseLevel(level))
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
