package coopflow

import "iter"

// LazySeq is the producer contract a Coroutine pulls from: a push
// iterator over opaque values, exactly like the standard library's
// iter.Seq but with T fixed to any so it can sit behind Factory's
// non-generic NewCoroutine (§9's redesign note collapses the source's
// many typed coroutine overloads to a single constructor taking a
// step-producing function of the generator self plus an opaque
// payload). Coroutine drives it with iter.Pull so the producer can be
// resumed one element at a time instead of running to completion.
type LazySeq = iter.Seq[any]

// Coroutine runs a producer function lazily, one yielded element per
// Step (§4.4). The producer is invoked on the first Step and handed the
// coroutine's own *Generator so it can read the current value or name
// while running.
//
// A yielded element that itself implements Completable is treated as a
// dependency: the coroutine stores it as Value, suspends, and resumes
// automatically once that dependency completes. Any other yielded
// value (including nil) is stored as Value without suspending — the
// coroutine remains running and is stepped again next tick. When the
// producer's sequence is exhausted, the coroutine completes. A panic
// from the producer, or from resuming it, is caught, logged, and
// completes the coroutine without propagating (§7).
type Coroutine struct {
	*Generator
	fn      func(*Generator) LazySeq
	started bool
	next    func() (any, bool)
	stop    func()
}

// NewCoroutine constructs a running Coroutine owned by kernel, lazily
// driven by fn. Application code normally goes through
// Factory.NewCoroutine instead.
func NewCoroutine(kernel *Kernel, fn func(*Generator) LazySeq) *Coroutine {
	return &Coroutine{Generator: NewGenerator(kernel), fn: fn}
}

func (c *Coroutine) Step() {
	if !c.CanStep() {
		return
	}
	if !c.started {
		c.started = true
		seq := c.produce()
		if seq == nil {
			c.MarkStepped()
			c.Complete()
			return
		}
		c.next, c.stop = iter.Pull(seq)
	}
	c.advance()
}

func (c *Coroutine) produce() (seq LazySeq) {
	defer func() {
		if r := recover(); r != nil {
			c.log().Error("coroutine producer panicked", "generator", c.Name(), "recover", r)
			seq = nil
		}
	}()
	return c.fn(c.Generator)
}

func (c *Coroutine) advance() {
	v, ok, panicked := c.pull()
	if panicked {
		c.Complete()
		return
	}
	if !ok {
		c.MarkStepped()
		c.Complete()
		if c.stop != nil {
			c.stop()
		}
		return
	}
	c.MarkStepped()
	if dep, isTransient := v.(Completable); isTransient {
		c.SetValue(dep)
		c.Suspend()
		dep.OnCompleted(func(Transient) { c.Resume() })
		return
	}
	c.SetValue(v)
}

func (c *Coroutine) pull() (v any, ok bool, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			c.log().Error("coroutine panicked mid-sequence", "generator", c.Name(), "recover", r)
			panicked = true
		}
	}()
	v, ok = c.next()
	return
}

// Subroutine invokes a plain function exactly once, on its first Step,
// and completes immediately with its return value (§4.4): no
// suspension points, no yielding. It is the non-lazy counterpart to
// Coroutine for work that needs no intermediate dependency waits.
type Subroutine struct {
	*Generator
	fn      func(*Generator) any
	invoked bool
}

// NewSubroutine constructs a running Subroutine owned by kernel.
// Application code normally goes through Factory.NewSubroutine instead.
func NewSubroutine(kernel *Kernel, fn func(*Generator) any) *Subroutine {
	return &Subroutine{Generator: NewGenerator(kernel), fn: fn}
}

func (s *Subroutine) Step() {
	if !s.CanStep() {
		return
	}
	if s.invoked {
		return
	}
	s.invoked = true
	result := s.invoke()
	s.MarkStepped()
	s.SetValue(result)
	s.Complete()
}

func (s *Subroutine) invoke() (result any) {
	defer func() {
		if r := recover(); r != nil {
			s.log().Error("subroutine panicked", "generator", s.Name(), "recover", r)
			result = nil
		}
	}()
	return s.fn(s.Generator)
}
