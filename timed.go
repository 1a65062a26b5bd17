package coopflow

import "time"

// The Timed* family composes a base primitive with a timeout leg
// behind a Trigger: whichever completes first — the wrapped primitive
// or a one-shot Timer(timeout) — wins. If the timer wins, the wrapped
// primitive is force-completed (its unmet work is abandoned) and
// TimedOut reports true. If the wrapped primitive wins first, the
// composite completes and its timer is no longer stepped; the timer has
// no further effect (§4.9's timed-composite note).
//
// The timer is checked only in the composite's own Step. Members that
// complete before that check (for example earlier in the same kernel
// tick) win even if the deadline has been reached in that tick; a
// member completing after the check loses to a deadline reached there.

// TimedBarrier races a Barrier against a deadline.
type TimedBarrier struct {
	*Generator
	inner    *Barrier
	timer    *Timer
	timedOut bool
	onTimeout []func(*TimedBarrier)
}

// NewTimedBarrier constructs a TimedBarrier whose inner Barrier must
// complete within timeout of construction or be abandoned.
func NewTimedBarrier(kernel *Kernel, timeout time.Duration) *TimedBarrier {
	tb := &TimedBarrier{
		Generator: NewGenerator(kernel),
		inner:     NewBarrier(kernel),
		timer:     NewTimer(kernel, timeout),
	}
	race := NewTrigger(kernel)
	race.Add(tb.inner)
	race.Add(tb.timer)
	race.OnCompleted(func(Transient) {
		if tb.inner.Active() {
			tb.timedOut = true
			tb.inner.Complete()
			for _, h := range tb.onTimeout {
				handler := h
				recoverInto(tb.log(), "timeout handler", tb.Name(), func() { handler(tb) })
			}
		}
		tb.Complete()
	})
	return tb
}

// Add enrolls a member on the inner barrier.
func (tb *TimedBarrier) Add(child Completable) { tb.inner.Add(child) }

// TimedOut reports whether the timeout leg won the race.
func (tb *TimedBarrier) TimedOut() bool { return tb.timedOut }

// OnTimedOut registers a handler invoked iff the timeout leg wins.
func (tb *TimedBarrier) OnTimedOut(handler func(*TimedBarrier)) {
	tb.onTimeout = append(tb.onTimeout, handler)
}

// Step drives the inner barrier (a no-op; Barrier has no step behavior
// of its own) and the timer.
func (tb *TimedBarrier) Step() {
	if !tb.CanStep() {
		return
	}
	if tb.inner.Active() {
		tb.inner.Step()
	}
	if !tb.Active() {
		tb.MarkStepped()
		return
	}
	if tb.timer.Active() {
		tb.timer.Step()
	}
	tb.MarkStepped()
}

// TimedTrigger races a Trigger against a deadline.
type TimedTrigger struct {
	*Generator
	inner     *Trigger
	timer     *Timer
	timedOut  bool
	onTimeout []func(*TimedTrigger)
}

// NewTimedTrigger constructs a TimedTrigger whose inner Trigger must
// see its first member complete within timeout of construction, or be
// abandoned.
func NewTimedTrigger(kernel *Kernel, timeout time.Duration) *TimedTrigger {
	tt := &TimedTrigger{
		Generator: NewGenerator(kernel),
		inner:     NewTrigger(kernel),
		timer:     NewTimer(kernel, timeout),
	}
	race := NewTrigger(kernel)
	race.Add(tt.inner)
	race.Add(tt.timer)
	race.OnCompleted(func(Transient) {
		if tt.inner.Active() {
			tt.timedOut = true
			tt.inner.Complete()
			for _, h := range tt.onTimeout {
				handler := h
				recoverInto(tt.log(), "timeout handler", tt.Name(), func() { handler(tt) })
			}
		}
		tt.Complete()
	})
	return tt
}

// Add enrolls a member on the inner trigger.
func (tt *TimedTrigger) Add(child Completable) { tt.inner.Add(child) }

// TimedOut reports whether the timeout leg won the race.
func (tt *TimedTrigger) TimedOut() bool { return tt.timedOut }

// OnTimedOut registers a handler invoked iff the timeout leg wins.
func (tt *TimedTrigger) OnTimedOut(handler func(*TimedTrigger)) {
	tt.onTimeout = append(tt.onTimeout, handler)
}

// Step drives the inner trigger (a no-op; Trigger has no step behavior
// of its own) and the timer.
func (tt *TimedTrigger) Step() {
	if !tt.CanStep() {
		return
	}
	if tt.inner.Active() {
		tt.inner.Step()
	}
	if !tt.Active() {
		tt.MarkStepped()
		return
	}
	if tt.timer.Active() {
		tt.timer.Step()
	}
	tt.MarkStepped()
}

// TimedFuture races a Future[T] against a deadline. If the timer wins,
// the inner future is force-completed without ever being assigned, so
// Value keeps returning T's zero value and Available stays false.
type TimedFuture[T any] struct {
	*Generator
	inner     *Future[T]
	timer     *Timer
	timedOut  bool
	onTimeout []func(*TimedFuture[T])
}

// NewTimedFuture constructs a TimedFuture whose inner Future must be
// assigned within timeout of construction, or be abandoned.
func NewTimedFuture[T any](kernel *Kernel, timeout time.Duration) *TimedFuture[T] {
	tf := &TimedFuture[T]{
		Generator: NewGenerator(kernel),
		inner:     NewFuture[T](kernel),
		timer:     NewTimer(kernel, timeout),
	}
	race := NewTrigger(kernel)
	race.Add(tf.inner)
	race.Add(tf.timer)
	race.OnCompleted(func(Transient) {
		if tf.inner.Active() {
			tf.timedOut = true
			tf.inner.Complete()
			for _, h := range tf.onTimeout {
				handler := h
				recoverInto(tf.log(), "timeout handler", tf.Name(), func() { handler(tf) })
			}
		}
		tf.Complete()
	})
	return tf
}

// SetValue assigns the inner future's value, racing the deadline.
func (tf *TimedFuture[T]) SetValue(v T) { tf.inner.SetValue(v) }

// Value returns the inner future's value, or T's zero value if it was
// never assigned (including the timed-out case).
func (tf *TimedFuture[T]) Value() T { return tf.inner.Value() }

// Available reports whether SetValue was ever called.
func (tf *TimedFuture[T]) Available() bool { return tf.inner.Available() }

// TimedOut reports whether the timeout leg won the race.
func (tf *TimedFuture[T]) TimedOut() bool { return tf.timedOut }

// OnTimedOut registers a handler invoked iff the timeout leg wins.
func (tf *TimedFuture[T]) OnTimedOut(handler func(*TimedFuture[T])) {
	tf.onTimeout = append(tf.onTimeout, handler)
}

// Step drives the inner future (a no-op; Future has no step behavior of
// its own) and the timer.
func (tf *TimedFuture[T]) Step() {
	if !tf.CanStep() {
		return
	}
	if tf.inner.Active() {
		tf.inner.Step()
	}
	if !tf.Active() {
		tf.MarkStepped()
		return
	}
	if tf.timer.Active() {
		tf.timer.Step()
	}
	tf.MarkStepped()
}
