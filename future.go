package coopflow

// Future is a single-value slot that completes the instant its value is
// assigned (§4.8). Reading before assignment returns T's zero value and
// Available() reports false; there is no blocking read, matching the
// core's single-threaded, never-block contract (§5).
//
// Future is generic, so it cannot be a method on the non-generic
// Factory interface (Go does not allow generic methods on an
// interface). It is constructed directly, the same way Transient and
// Generator are, rather than routed through Factory.
type Future[T any] struct {
	*Generator
	value     T
	available bool
}

// NewFuture constructs an unresolved, running Future owned by kernel.
func NewFuture[T any](kernel *Kernel) *Future[T] {
	return &Future[T]{Generator: NewGenerator(kernel)}
}

// Value returns the assigned value, or T's zero value if none has been
// assigned yet. Check Available to distinguish a genuine zero value
// from "not yet assigned".
func (f *Future[T]) Value() T { return f.value }

// Available reports whether SetValue has been called.
func (f *Future[T]) Available() bool { return f.available }

// SetValue assigns the future's value and completes it. A Future
// resolves exactly once: calls after the first are no-ops, matching
// Complete's idempotence.
func (f *Future[T]) SetValue(v T) {
	if f.available {
		return
	}
	f.value = v
	f.available = true
	f.Complete()
}
