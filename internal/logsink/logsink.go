// Package logsink defines the logging capability the kernel requires
// (§6, §7) and the concrete sinks applications wire into it: a no-op
// sink, a test-collecting sink, and a production slog-backed sink. This
// package is a leaf: it has no dependency on the kernel, mirroring
// statechartx/internal/primitives' "zero-dependency core data structure"
// discipline.
package logsink

import (
	"fmt"
)

// Sink is the four-severity logging capability the core calls on
// handler exceptions and coroutine faults. A no-op sink is acceptable
// (§6).
type Sink interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Verbose(level int, msg string, args ...any)
}

type noopSink struct{}

func (noopSink) Info(string, ...any)         {}
func (noopSink) Warn(string, ...any)         {}
func (noopSink) Error(string, ...any)        {}
func (noopSink) Verbose(int, string, ...any) {}

// Noop returns a Sink that discards everything.
func Noop() Sink { return noopSink{} }

// Record is a single log entry, as captured by CollectingSink.
type Record struct {
	Level        string // "info", "warn", "error", or "verbose"
	VerboseLevel int
	Msg          string
	Args         []any
}

// String renders the record roughly the way slog's text handler would,
// for readable test failure output.
func (r Record) String() string {
	return fmt.Sprintf("[%s] %s %v", r.Level, r.Msg, r.Args)
}

// CollectingSink captures every call for test assertions instead of
// writing anywhere. It is not safe for concurrent use, matching the
// kernel's own single-thread contract.
type CollectingSink struct {
	Records []Record
}

// NewCollectingSink returns an empty CollectingSink.
func NewCollectingSink() *CollectingSink {
	return &CollectingSink{}
}

func (c *CollectingSink) Info(msg string, args ...any) {
	c.Records = append(c.Records, Record{Level: "info", Msg: msg, Args: args})
}

func (c *CollectingSink) Warn(msg string, args ...any) {
	c.Records = append(c.Records, Record{Level: "warn", Msg: msg, Args: args})
}

func (c *CollectingSink) Error(msg string, args ...any) {
	c.Records = append(c.Records, Record{Level: "error", Msg: msg, Args: args})
}

func (c *CollectingSink) Verbose(level int, msg string, args ...any) {
	c.Records = append(c.Records, Record{Level: "verbose", VerboseLevel: level, Msg: msg, Args: args})
}

// HasLevel reports whether any collected record has the given level.
func (c *CollectingSink) HasLevel(level string) bool {
	for _, r := range c.Records {
		if r.Level == level {
			return true
		}
	}
	return false
}
