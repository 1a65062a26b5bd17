package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopTracerProducesUsableSpans(t *testing.T) {
	tr := NewTracer(NoopProvider(), "test")
	_, span := tr.Start(context.Background(), "step")
	span.SetStepNumber(5)
	span.SetDelta(16 * time.Millisecond)
	span.RecordFault(errors.New("boom"))
	span.End()
}

func TestNewTracerDefaultsNilProviderToNoop(t *testing.T) {
	tr := NewTracer(nil, "test")
	_, span := tr.Start(context.Background(), "step")
	span.End()
}
