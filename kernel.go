package coopflow

import (
	"context"
	"time"

	"github.com/coopflow/coopflow/internal/telemetry"
)

// Kernel owns the root Node, the time model, and the step driver (§4.1).
// Applications call Update or Step once per frame; the kernel propagates
// stepping into the root, which propagates into each active child.
//
// A Kernel is not safe for concurrent use (§5): every method must be
// called from the same goroutine.
type Kernel struct {
	root *Node

	time       time.Duration
	lastDelta  time.Duration
	stepNumber uint64
	breakFlag  bool
	waitUntil  *time.Duration

	factory Factory
	log     LogSink
	tracer  telemetry.Tracer
}

// KernelOption configures a Kernel at construction time, the same
// functional-options idiom the teacher uses for Machine (see
// internal/core/options.go).
type KernelOption func(*Kernel)

// WithLogSink configures the kernel's log sink. Defaults to NoopSink.
func WithLogSink(sink LogSink) KernelOption {
	return func(k *Kernel) { k.log = sink }
}

// WithFactory configures the kernel's flow-object factory. Defaults to
// DefaultFactory.
func WithFactory(f Factory) KernelOption {
	return func(k *Kernel) { k.factory = f }
}

// WithTracerProvider configures an OpenTelemetry TracerProvider the
// kernel spans each step with. Defaults to a no-op provider (Expansion
// B); the core never requires a real tracing backend.
func WithTracerProvider(tp telemetry.Provider) KernelOption {
	return func(k *Kernel) { k.tracer = telemetry.NewTracer(tp, "coopflow/kernel") }
}

// NewKernel constructs a Kernel with its own root Node and applies opts.
func NewKernel(opts ...KernelOption) *Kernel {
	k := &Kernel{
		log: NoopSink(),
	}
	k.factory = NewDefaultFactory(k)
	k.tracer = telemetry.NewTracer(telemetry.NoopProvider(), "coopflow/kernel")
	for _, opt := range opts {
		opt(k)
	}
	k.root = k.factory.NewNode()
	return k
}

// Root returns the kernel's root Node. Application code adds top-level
// flow objects to it.
func (k *Kernel) Root() *Node { return k.root }

// Time returns the kernel's monotonic clock: seconds-equivalent elapsed
// since kernel creation, accumulated only via Update deltas (§3). The
// core makes no direct clock syscalls (§6) — this is the only time
// source Timer/Periodic read.
func (k *Kernel) Time() time.Duration { return k.time }

// LastDelta returns the delta passed to the most recent Update call.
func (k *Kernel) LastDelta() time.Duration { return k.lastDelta }

// StepNumber returns the number of Step/Update invocations that actually
// stepped the root (i.e. excludes no-op steps taken while BreakFlag is
// set or a Wait deadline has not elapsed).
func (k *Kernel) StepNumber() uint64 { return k.stepNumber }

// BreakFlag reports whether Step/Update calls are currently suppressed.
func (k *Kernel) BreakFlag() bool { return k.breakFlag }

// Factory returns the kernel's flow-object factory.
func (k *Kernel) Factory() Factory { return k.factory }

// Log returns the kernel's log sink.
func (k *Kernel) Log() LogSink { return k.log }

// Update advances the kernel's clock by delta and then steps (§4.1).
// delta must be non-negative; Time() is non-decreasing across any
// sequence of Update calls with non-negative deltas (§8).
func (k *Kernel) Update(delta time.Duration) {
	k.lastDelta = delta
	if delta > 0 {
		k.time += delta
	}
	k.Step()
}

// Step performs at most one tick of each active child generator (§4.1).
// It is a no-op if BreakFlag is set, or if a Wait deadline has not yet
// elapsed.
func (k *Kernel) Step() {
	if k.breakFlag {
		return
	}
	if k.waitUntil != nil {
		if k.time < *k.waitUntil {
			return
		}
		k.waitUntil = nil
	}

	k.stepNumber++

	ctx, span := k.tracer.Start(context.Background(), "kernel.step")
	span.SetStepNumber(k.stepNumber)
	span.SetDelta(k.lastDelta)
	defer span.End()
	_ = ctx

	k.root.Step()
}

// Wait suspends stepping until duration has elapsed on the kernel's
// clock (§4.1): Step becomes a no-op until Time() reaches the deadline,
// after which the deadline clears and stepping resumes.
func (k *Kernel) Wait(duration time.Duration) {
	deadline := k.time + duration
	k.waitUntil = &deadline
}

// BreakFlow sets BreakFlag. Future steps become no-ops. There is no
// built-in reset (§4.1, Expansion D): the break is terminal per kernel
// instance; applications that want to resume scheduling create a new
// Kernel.
func (k *Kernel) BreakFlow() {
	k.breakFlag = true
}
