// Package coopflow implements a single-threaded cooperative scheduler — a
// "kernel" that drives a hierarchy of composable flow objects (coroutines,
// sequences, barriers, triggers, futures, timers) through discrete update
// steps driven by a caller-supplied time advance.
//
// Applications, typically game loops or simulation main-loops, call
// [Kernel.Update] once per frame. The kernel steps its root [Node], which
// steps each active child in insertion order. Long-running logic is
// expressed as a [Coroutine] yielding values or other flow objects at
// suspension points, rather than as an explicit state machine spread
// across update callbacks.
//
// There is no preemption, no parallel stepping, and no thread safety on
// flow objects: every operation on a transient owned by a kernel must be
// invoked from the goroutine that calls Update/Step.
package coopflow
