package coopflow

import "github.com/coopflow/coopflow/internal/eventbus"

// Publisher is the completion event bus capability a Factory can be
// configured with (Expansion C). Concrete publishers live in
// internal/eventbus and are re-exported here under a stable name, the
// same pattern as LogSink.
type Publisher = eventbus.Publisher

// CompletionEvent is what a Publisher receives when a transient the
// Factory constructed completes.
type CompletionEvent = eventbus.CompletionEvent

// NewChannelPublisher returns a Publisher that forwards completion
// events to ch, non-blocking, dropping on backpressure.
func NewChannelPublisher(ch chan<- CompletionEvent) Publisher {
	return eventbus.NewChannelPublisher(ch)
}

// publishOnCompletion wires t to notify p when t completes. Used by
// DefaultFactory to give every transient it constructs bus visibility
// without every composite needing to know about publishing.
func publishOnCompletion(t *Transient, p Publisher) {
	t.OnCompleted(func(self Transient) {
		_ = p.Publish(CompletionEvent{
			Name:       self.Name(),
			StepNumber: stepNumberOf(self.Kernel()),
		})
	})
}

func stepNumberOf(k *Kernel) uint64 {
	if k == nil {
		return 0
	}
	return k.StepNumber()
}
