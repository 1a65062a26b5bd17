package coopflow

import "testing"

func TestSequenceOrdersChildren(t *testing.T) {
	k := NewKernel()
	seq := NewSequence(k)

	var order []int
	for i := 1; i <= 3; i++ {
		n := i
		seq.Add(NewSubroutine(k, func(*Generator) any {
			order = append(order, n)
			return nil
		}))
	}

	for seq.Active() {
		seq.Step()
	}

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i, v := range want {
		if order[i] != v {
			t.Errorf("order = %v, want %v", order, want)
		}
	}
}

func TestSequenceAddDuringRunIsReached(t *testing.T) {
	k := NewKernel()
	seq := NewSequence(k)

	secondRan := false
	seq.Add(NewSubroutine(k, func(*Generator) any {
		seq.Add(NewSubroutine(k, func(*Generator) any {
			secondRan = true
			return nil
		}))
		return nil
	}))

	for seq.Active() {
		seq.Step()
	}

	if !secondRan {
		t.Errorf("child appended during the sequence's run never ran")
	}
}

func TestSequenceEmptyCompletesImmediately(t *testing.T) {
	k := NewKernel()
	seq := NewSequence(k)
	seq.Step()
	if seq.Active() {
		t.Errorf("empty Sequence did not complete on its first Step")
	}
}
