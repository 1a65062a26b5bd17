// Package telemetry wraps an OpenTelemetry TracerProvider for the
// kernel's per-step spans (SPEC_FULL.md Expansion B). It mirrors
// stateforward/go-hsm's pkg/telemetry package: a Provider/Tracer/Span
// triplet that defaults to doing nothing so the core never requires a
// real tracing backend, but — unlike go-hsm's permanently-stubbed
// version — forwards to a real otel.TracerProvider when the embedder
// supplies one via NewTracer.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Provider is the narrow capability this package needs from an
// OpenTelemetry SDK: the ability to hand out a Tracer. A real
// *sdktrace.TracerProvider satisfies this, as does trace.TracerProvider
// itself (otel's own interface), as does NoopProvider.
type Provider = trace.TracerProvider

// NoopProvider returns a Provider that produces no-op spans. This is the
// kernel's default, since the core never requires a tracing backend.
func NoopProvider() Provider {
	return noop.NewTracerProvider()
}

// Tracer starts spans for kernel steps. It is a thin wrapper rather than
// a bare otel Tracer so that kernel.go can attach scheduler-specific
// attributes (step number, delta) without every call site repeating the
// attribute-key boilerplate.
type Tracer struct {
	inner trace.Tracer
}

// NewTracer wraps provider, naming the resulting otel Tracer name (the
// instrumentation scope, in otel terms).
func NewTracer(provider Provider, name string) Tracer {
	if provider == nil {
		provider = NoopProvider()
	}
	return Tracer{inner: provider.Tracer(name)}
}

// Start begins a new step span.
func (t Tracer) Start(ctx context.Context, spanName string) (context.Context, Span) {
	ctx, span := t.inner.Start(ctx, spanName)
	return ctx, Span{inner: span}
}

// Span wraps an otel trace.Span with scheduler-specific setters.
type Span struct {
	inner trace.Span
}

// SetStepNumber records the kernel's current step counter on the span.
func (s Span) SetStepNumber(n uint64) {
	s.inner.SetAttributes(attribute.Int64("coopflow.step_number", int64(n)))
}

// SetDelta records the delta passed to the Update call that produced
// this step.
func (s Span) SetDelta(d time.Duration) {
	s.inner.SetAttributes(attribute.Int64("coopflow.delta_ms", d.Milliseconds()))
}

// RecordFault records an error on the span (coroutine faults, listener
// panics) without letting it unwind past the span, matching §7's
// propagation policy.
func (s Span) RecordFault(err error) {
	s.inner.RecordError(err)
}

// End completes the span.
func (s Span) End() {
	s.inner.End()
}
