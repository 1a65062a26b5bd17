package coopflow

import "testing"

func TestTriggerAlreadyInactiveChildCompletesImmediately(t *testing.T) {
	k := NewKernel()
	already := NewTransient(k)
	already.Complete()

	trig := NewTrigger(k)
	trig.Add(already)
	if !trig.Active() {
		return
	}
	t.Errorf("trigger did not complete immediately against an already-completed child")
}

func TestTriggerAddAfterCompletionIsNoOp(t *testing.T) {
	k := NewKernel()
	trig := NewTrigger(k)
	trig.Complete()

	member := NewTransient(k)
	trig.Add(member)
	if trig.Remaining() != 0 {
		t.Errorf("Remaining() = %d after Add on a completed trigger, want 0", trig.Remaining())
	}
}

func TestTriggerEmptyAtConstructionStaysActive(t *testing.T) {
	k := NewKernel()
	trig := NewTrigger(k)
	if !trig.Active() {
		t.Errorf("empty Trigger is inactive immediately after construction")
	}
}
