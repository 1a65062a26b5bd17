package coopflow

// Transient is the lifetime primitive shared by every flow object (§3,
// §4.2). It is active from creation until it completes, fires its
// completion signal exactly once, and supports cascade completion via
// CompleteAfter.
//
// Transient is not safe for concurrent use; every operation must be
// invoked from the goroutine driving the owning Kernel (§5).
type Transient struct {
	kernel *Kernel
	name   string
	active bool

	// listeners is a fire-once queue, drained and cleared at completion so
	// a handler can never keep this transient reachable past emission
	// (§9's redesign note on retention cycles).
	listeners []func(Transient)
}

// NewTransient constructs an active Transient owned by kernel. Application
// code normally goes through a Factory (factory.go) instead of calling
// this directly, so that naming and kernel back-reference assignment stay
// centralized (§6).
func NewTransient(kernel *Kernel) *Transient {
	return &Transient{kernel: kernel, active: true}
}

// Kernel returns the owning scheduler.
func (t *Transient) Kernel() *Kernel { return t.kernel }

// Name returns the transient's human-readable name, or "" if unset.
func (t *Transient) Name() string { return t.name }

// SetName sets the transient's human-readable name. Exposed so Factory's
// Named decorator (§6) can apply to any transient uniformly.
func (t *Transient) SetName(name string) { t.name = name }

// Active reports whether the transient has not yet completed.
func (t *Transient) Active() bool { return t.active }

// OnCompleted registers a fire-once handler invoked exactly once, at the
// point Complete first transitions Active() to false. If the transient is
// already inactive, the handler runs synchronously before OnCompleted
// returns (matching CompleteAfter's "immediately if already inactive"
// rule, §4.2).
func (t *Transient) OnCompleted(handler func(Transient)) {
	if !t.active {
		handler(*t)
		return
	}
	t.listeners = append(t.listeners, handler)
}

// Complete is idempotent: the first call transitions Active() true→false
// and invokes every registered handler exactly once, in registration
// order; subsequent calls are no-ops (§4.2). Handler panics are caught,
// reported to the kernel's log sink, and do not prevent later handlers
// from running (§7).
func (t *Transient) Complete() {
	if !t.active {
		return
	}
	t.active = false

	handlers := t.listeners
	t.listeners = nil

	for _, h := range handlers {
		t.runHandler(h)
	}
}

func (t *Transient) runHandler(h func(Transient)) {
	defer func() {
		if r := recover(); r != nil {
			t.log().Error("completion handler panicked", "transient", t.name, "recover", r)
		}
	}()
	h(*t)
}

// CompleteAfter arranges for Complete to be invoked once other completes,
// or immediately if other is already inactive (§4.2). A nil other is
// rejected: the core logs and does nothing, per §7's invariant-violation
// policy.
func (t *Transient) CompleteAfter(other *Transient) {
	if other == nil {
		t.log().Error("CompleteAfter called with nil transient", "transient", t.name)
		return
	}
	other.OnCompleted(func(Transient) {
		t.Complete()
	})
}

// Then registers a one-shot handler invoked at completion, ignoring the
// completed transient argument (§4.2's "sugar over completed").
func (t *Transient) Then(action func()) {
	t.OnCompleted(func(Transient) { action() })
}

func (t *Transient) log() LogSink {
	if t.kernel == nil {
		return NoopSink()
	}
	return t.kernel.Log()
}
