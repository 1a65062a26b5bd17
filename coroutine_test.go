package coopflow

import "testing"

func TestSubroutineRunsOnceAndCompletes(t *testing.T) {
	k := NewKernel()
	calls := 0
	sub := NewSubroutine(k, func(*Generator) any {
		calls++
		return "result"
	})

	sub.Step()
	sub.Step() // second Step must be a no-op: Subroutine already completed

	if calls != 1 {
		t.Errorf("subroutine function ran %d times, want 1", calls)
	}
	if sub.Value() != "result" {
		t.Errorf("Value() = %v, want %q", sub.Value(), "result")
	}
	if sub.Active() {
		t.Errorf("subroutine still active after its single step")
	}
}

func TestSubroutinePanicIsContained(t *testing.T) {
	k := NewKernel()
	sub := NewSubroutine(k, func(*Generator) any {
		panic("boom")
	})

	sub.Step()
	if sub.Active() {
		t.Errorf("subroutine still active after its function panicked")
	}
	if sub.Value() != nil {
		t.Errorf("Value() = %v after a panicking function, want nil", sub.Value())
	}
}

func TestCoroutineYieldsPlainValuesWithoutSuspending(t *testing.T) {
	k := NewKernel()
	co := NewCoroutine(k, func(*Generator) LazySeq {
		return func(yield func(any) bool) {
			if !yield(1) {
				return
			}
			if !yield(2) {
				return
			}
		}
	})

	co.Step()
	if !co.Running() {
		t.Fatalf("coroutine suspended on a plain, non-transient yield")
	}
	if co.Value() != 1 {
		t.Errorf("Value() = %v after first yield, want 1", co.Value())
	}

	co.Step()
	if co.Value() != 2 {
		t.Errorf("Value() = %v after second yield, want 2", co.Value())
	}

	co.Step()
	if co.Active() {
		t.Errorf("coroutine still active after its sequence was exhausted")
	}
}

func TestCoroutineProducerPanicCompletesWithoutPropagating(t *testing.T) {
	k := NewKernel()
	co := NewCoroutine(k, func(*Generator) LazySeq {
		panic("producer exploded")
	})

	co.Step()
	if co.Active() {
		t.Errorf("coroutine still active after its producer panicked")
	}
}

func TestCoroutineNilProducerCompletesImmediately(t *testing.T) {
	k := NewKernel()
	co := NewCoroutine(k, func(*Generator) LazySeq { return nil })

	co.Step()
	if co.Active() {
		t.Errorf("coroutine still active after a nil producer sequence")
	}
}
