package coopflow

import (
	"time"

	"github.com/google/uuid"
)

// Factory is the single entry point for flow-object construction (§6):
// every transient a Factory produces has its kernel back-reference set
// at birth and its initial running state normalized. This collapses the
// source implementation's 40+ typed convenience overloads (§9's redesign
// note) down to one constructor per primitive; arity/ergonomics sugar
// belongs outside the core, in application code.
type Factory interface {
	NewTransient() *Transient
	NewGenerator() *Generator
	NewNode() *Node
	NewGroup() *Group
	NewSequence() *Sequence
	NewBarrier() *Barrier
	NewTrigger() *Trigger
	NewSubroutine(fn func(*Generator) any) *Subroutine
	NewCoroutine(fn func(*Generator) LazySeq) *Coroutine
	NewTimer(interval time.Duration) *Timer
	NewPeriodic(period time.Duration) *Periodic

	// Named decorates any transient with a human-readable name and
	// returns it, so callers can write e.g.
	// f.Named(f.NewBarrier().Transient, "spawn-barrier"). Applicable to any
	// transient uniformly (§6).
	Named(t *Transient, name string) *Transient

	// Publisher returns the completion event bus this factory wires
	// every constructed transient into, or nil if none is configured
	// (Expansion C).
	Publisher() Publisher
}

// DefaultFactory is the core's reference Factory implementation.
// Transients it creates that are not explicitly Named are assigned a
// uuid-derived default name, so logs and traces always carry a stable
// per-instance identifier (Expansion B, grounded on stateforward/go-hsm
// and me/gowe's uuid usage).
type DefaultFactory struct {
	kernel    *Kernel
	publisher Publisher
}

// NewDefaultFactory constructs a DefaultFactory bound to kernel.
func NewDefaultFactory(kernel *Kernel) *DefaultFactory {
	return &DefaultFactory{kernel: kernel}
}

// WithPublisher configures the completion event bus every subsequently
// constructed transient is wired to notify (Expansion C). Returns f for
// chaining.
func (f *DefaultFactory) WithPublisher(p Publisher) *DefaultFactory {
	f.publisher = p
	return f
}

func (f *DefaultFactory) Publisher() Publisher { return f.publisher }

func (f *DefaultFactory) defaultName(kind string) string {
	return kind + "-" + uuid.NewString()
}

func (f *DefaultFactory) wire(t *Transient, kind string) {
	if t.Name() == "" {
		t.SetName(f.defaultName(kind))
	}
	if f.publisher != nil {
		publishOnCompletion(t, f.publisher)
	}
}

func (f *DefaultFactory) NewTransient() *Transient {
	t := NewTransient(f.kernel)
	f.wire(t, "transient")
	return t
}

func (f *DefaultFactory) NewGenerator() *Generator {
	g := NewGenerator(f.kernel)
	f.wire(g.Transient, "generator")
	return g
}

func (f *DefaultFactory) NewNode() *Node {
	n := NewNode(f.kernel)
	f.wire(n.Transient, "node")
	return n
}

func (f *DefaultFactory) NewGroup() *Group {
	g := NewGroup(f.kernel)
	f.wire(g.Transient, "group")
	return g
}

func (f *DefaultFactory) NewSequence() *Sequence {
	s := NewSequence(f.kernel)
	f.wire(s.Transient, "sequence")
	return s
}

func (f *DefaultFactory) NewBarrier() *Barrier {
	b := NewBarrier(f.kernel)
	f.wire(b.Transient, "barrier")
	return b
}

func (f *DefaultFactory) NewTrigger() *Trigger {
	t := NewTrigger(f.kernel)
	f.wire(t.Transient, "trigger")
	return t
}

func (f *DefaultFactory) NewSubroutine(fn func(*Generator) any) *Subroutine {
	s := NewSubroutine(f.kernel, fn)
	f.wire(s.Transient, "subroutine")
	return s
}

func (f *DefaultFactory) NewCoroutine(fn func(*Generator) LazySeq) *Coroutine {
	c := NewCoroutine(f.kernel, fn)
	f.wire(c.Transient, "coroutine")
	return c
}

func (f *DefaultFactory) NewTimer(interval time.Duration) *Timer {
	t := NewTimer(f.kernel, interval)
	f.wire(t.Transient, "timer")
	return t
}

func (f *DefaultFactory) NewPeriodic(period time.Duration) *Periodic {
	p := NewPeriodic(f.kernel, period)
	f.wire(p.Transient, "periodic")
	return p
}

func (f *DefaultFactory) Named(t *Transient, name string) *Transient {
	t.SetName(name)
	return t
}
