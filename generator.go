package coopflow

// Completable is the minimal capability a transient exposes to generic
// composites (Barrier, Trigger, Group, ResumeAfter/SuspendAfter wiring):
// enough to observe completion and to force it, without committing to a
// concrete type. Both *Transient and every type built on top of it (via
// embedding) satisfy this by promotion.
type Completable interface {
	Active() bool
	Complete()
	OnCompleted(func(Transient))
	Name() string
}

// Stepper is the capability a Kernel/Node needs to drive a child once per
// tick: enough to step it and to observe whether it is still worth
// keeping around.
type Stepper interface {
	Completable
	Step()
	Running() bool
	StepNumber() uint64
}

// Generator is a Transient that can be stepped by the scheduler (§3,
// §4.3). It carries a running/suspended flag, a monotonic step counter,
// and a last-produced value. Generator's own Step is a no-op; composites
// with real step behavior (Sequence, Timer, Periodic, Coroutine, ...)
// define their own Step method, which shadows this one for callers that
// hold the concrete or an interface-typed value — Barrier/Trigger/Group/
// Future have no step behavior of their own and simply inherit this one,
// matching §4.6/§4.7/§4.10's "no own step behavior" wording.
type Generator struct {
	*Transient
	running    bool
	stepNumber uint64
	value      any
}

// NewGenerator constructs a running Generator owned by kernel.
func NewGenerator(kernel *Kernel) *Generator {
	return &Generator{
		Transient: NewTransient(kernel),
		running:   true,
	}
}

// Running reports whether the generator is currently eligible to step.
func (g *Generator) Running() bool { return g.running }

// StepNumber returns the number of steps that have actually executed
// work (no-op steps, per §3, never increment this).
func (g *Generator) StepNumber() uint64 { return g.stepNumber }

// Value returns the last produced value, or nil if none has been
// produced yet.
func (g *Generator) Value() any { return g.value }

// SetValue sets the last produced value. Exposed for composites built on
// top of Generator; application code should not normally call this
// directly.
func (g *Generator) SetValue(v any) { g.value = v }

// CanStep reports whether a Step call would do anything: active and
// running. Composites call this as their first line so the "no-op on
// inactive or suspended" invariant (§3) is enforced uniformly.
func (g *Generator) CanStep() bool { return g.Active() && g.running }

// MarkStepped increments the step counter. Composites call this only
// after they have actually performed a unit of work, never on a no-op
// step, per §3's invariant.
func (g *Generator) MarkStepped() { g.stepNumber++ }

// Step is the default no-op step: does nothing regardless of state.
// Composites with real behavior define their own Step method.
func (g *Generator) Step() {}

// Suspend transitions Active(running) -> Active(suspended). Idempotent.
func (g *Generator) Suspend() { g.running = false }

// Resume transitions Active(suspended) -> Active(running). Idempotent.
func (g *Generator) Resume() { g.running = true }

// ResumeAfter atomically suspends and arranges to resume once other
// completes (or immediately, since OnCompleted fires synchronously for an
// already-inactive other), per §4.3.
func (g *Generator) ResumeAfter(other Completable) {
	g.Suspend()
	if other == nil {
		g.log().Error("ResumeAfter called with nil dependency", "generator", g.Name())
		return
	}
	other.OnCompleted(func(Transient) { g.Resume() })
}

// SuspendAfter is the dual of ResumeAfter: resumes now, arranges to
// suspend once other completes.
func (g *Generator) SuspendAfter(other Completable) {
	g.Resume()
	if other == nil {
		g.log().Error("SuspendAfter called with nil dependency", "generator", g.Name())
		return
	}
	other.OnCompleted(func(Transient) { g.Suspend() })
}
