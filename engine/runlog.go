package engine

import (
	"log/slog"
	"strconv"
	"sync/atomic"

	"ssspengine/pkg/logger"
)

var runCounter uint64

// nextRunID returns a process-unique identifier for one solve invocation,
// letting lifecycle log lines from solves interleaved across goroutines
// (§5) be correlated back to the same run.
func nextRunID() string {
	return strconv.FormatUint(atomic.AddUint64(&runCounter, 1), 10)
}

// runLogger tags a lifecycle logger with a fresh run identifier via
// logger.WithRun, then layers the solver variant on top, so a single solve
// invocation's start/finish (or restart) lines can be correlated even when
// several solves are interleaved across goroutines (§5).
func runLogger(variant string) (*slog.Logger, string) {
	runID := nextRunID()
	return logger.WithRun(runID).With("variant", variant), runID
}
