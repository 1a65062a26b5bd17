package coopflow

import (
	"io"

	"github.com/coopflow/coopflow/internal/logsink"
)

// LogSink is the logging façade the kernel calls on handler exceptions and
// coroutine faults (§6, §7). It is the only capability the core requires
// from an external logger: four severities, no structured-field API, no
// dependency on a concrete logging library. Concrete sinks (backed by
// log/slog, or a no-op, or a test-collecting sink) live in
// internal/logsink and are re-exported here under a stable name.
type LogSink = logsink.Sink

// NoopSink returns a LogSink that discards everything.
func NoopSink() LogSink { return logsink.Noop() }

// NewSlogSink returns a LogSink backed by log/slog, writing to w in the
// given format ("text" or "json") at the given level ("debug", "info",
// "warn", or "error").
func NewSlogSink(w io.Writer, level, format string) LogSink {
	return logsink.NewSlogSinkWithWriter(logsink.ParseLevel(level), format, w)
}
