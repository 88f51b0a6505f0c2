// Package logging wraps logrus with the severity vocabulary the
// pipeline's driver and worker loops use: a plain info/debug/warn
// trio for progress reporting, and a fatal level that logs once and
// exits — with the exit call routed through a package variable so
// tests can observe it instead of killing the test binary.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Exit is called by FatalLog after logging. Tests override it to
// capture the exit code instead of calling os.Exit.
var Exit = os.Exit

// SetLevel controls which severities are emitted. No command-line flag
// sets it; the CLI runs at logrus's default Info level.
func SetLevel(level logrus.Level) { log.SetLevel(level) }

// InfoLog records progress. The driver logs one line per completed
// window with its 1-based index out of the total and its runtime; it
// logs no completion percentage.
func InfoLog(format string, args ...any) { log.Infof(format, args...) }

// DebugLog records detail not needed on a normal run, e.g. individual
// flush events.
func DebugLog(format string, args ...any) { log.Debugf(format, args...) }

// WarnLog records a recoverable anomaly, e.g. a skipped truncated
// window.
func WarnLog(format string, args ...any) { log.Warnf(format, args...) }

// FatalLog logs a single fatal line and exits via Exit with a
// non-zero status, matching the driver's "single fatal log line,
// non-zero exit" contract.
func FatalLog(format string, args ...any) {
	log.Errorf(format, args...)
	Exit(1)
}
