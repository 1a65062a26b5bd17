package coopflow

import "time"

// Timer is a one-shot alarm (§4.9): it completes the first time the
// kernel's clock reaches start+interval, where start is the clock value
// at the moment the Timer was constructed. Timer reads only
// Kernel.Time(); it makes no direct clock syscalls (§6).
type Timer struct {
	*Generator
	start    time.Duration
	interval time.Duration
}

// NewTimer constructs a running Timer owned by kernel, due interval
// after the current kernel time.
func NewTimer(kernel *Kernel, interval time.Duration) *Timer {
	t := &Timer{Generator: NewGenerator(kernel), interval: interval}
	if kernel != nil {
		t.start = kernel.Time()
	}
	return t
}

// OnElapsed registers a handler invoked when the timer fires (at the
// moment it completes). Sugar over OnCompleted that hands back the
// concrete *Timer instead of a bare Transient.
func (t *Timer) OnElapsed(handler func(*Timer)) {
	t.OnCompleted(func(Transient) { handler(t) })
}

// Remaining returns the time left before the timer fires, clamped to
// zero once elapsed.
func (t *Timer) Remaining() time.Duration {
	elapsed := t.Kernel().Time() - t.start
	left := t.interval - elapsed
	if left < 0 {
		return 0
	}
	return left
}

// Step checks the clock and completes the timer once interval has
// elapsed since construction. Checking the clock without crossing the
// deadline is not "work" and does not advance StepNumber.
func (t *Timer) Step() {
	if !t.CanStep() {
		return
	}
	if t.Kernel().Time()-t.start >= t.interval {
		t.MarkStepped()
		t.Complete()
	}
}

// Periodic fires repeatedly at a fixed period, never completing on its
// own (§4.9). Each Step call fires at most one tick, even if the
// elapsed delta spans multiple periods: Periodic does not catch up by
// firing several ticks in a single Update (Expansion D) — it simply
// advances its next deadline by one period and will fire again on a
// later Step once the clock has caught up to that deadline too.
type Periodic struct {
	*Generator
	period    time.Duration
	next      time.Duration
	tickCount uint64
	onTick    []func(*Periodic)
}

// NewPeriodic constructs a running Periodic owned by kernel, whose
// first tick is due period after the current kernel time.
func NewPeriodic(kernel *Kernel, period time.Duration) *Periodic {
	p := &Periodic{Generator: NewGenerator(kernel), period: period}
	if kernel != nil {
		p.next = kernel.Time() + period
	} else {
		p.next = period
	}
	return p
}

// TickCount returns the number of ticks fired so far.
func (p *Periodic) TickCount() uint64 { return p.tickCount }

// OnTick registers a handler invoked once per fired tick.
func (p *Periodic) OnTick(handler func(*Periodic)) {
	p.onTick = append(p.onTick, handler)
}

// Step fires a tick if the clock has reached the next deadline.
func (p *Periodic) Step() {
	if !p.CanStep() {
		return
	}
	if p.Kernel().Time() < p.next {
		return
	}
	p.MarkStepped()
	p.tickCount++
	p.next += p.period
	for _, h := range p.onTick {
		handler := h
		recoverInto(p.log(), "periodic tick handler", p.Name(), func() { handler(p) })
	}
}
