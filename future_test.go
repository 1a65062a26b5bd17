package coopflow

import "testing"

func TestFutureUnresolvedReadsZeroValue(t *testing.T) {
	k := NewKernel()
	f := NewFuture[int](k)
	if f.Available() {
		t.Fatalf("Available() = true before SetValue")
	}
	if f.Value() != 0 {
		t.Errorf("Value() = %d before SetValue, want 0", f.Value())
	}
}

func TestFutureResolvesExactlyOnce(t *testing.T) {
	k := NewKernel()
	f := NewFuture[string](k)
	f.SetValue("first")
	f.SetValue("second")

	if f.Value() != "first" {
		t.Errorf("Value() = %q, want %q (second SetValue must be a no-op)", f.Value(), "first")
	}
	if f.Active() {
		t.Errorf("Future still active after SetValue")
	}
}
