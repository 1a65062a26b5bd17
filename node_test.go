package coopflow

import "testing"

func TestNodeStepsEachActiveChildOnce(t *testing.T) {
	k := NewKernel()
	n := NewNode(k)

	counts := map[string]int{}
	for _, name := range []string{"a", "b", "c"} {
		name := name
		sub := NewSubroutine(k, func(*Generator) any {
			counts[name]++
			return nil
		})
		n.Add(sub)
	}

	n.Step()
	for name, c := range counts {
		if c != 1 {
			t.Errorf("child %q ran %d times, want 1", name, c)
		}
	}
}

func TestNodeRemovesCompletedChildren(t *testing.T) {
	k := NewKernel()
	n := NewNode(k)
	sub := NewSubroutine(k, func(*Generator) any { return nil })
	n.Add(sub)

	n.Step() // subroutine completes on its first step
	if len(n.Children()) != 0 {
		t.Errorf("completed child was not removed, Children() = %v", n.Children())
	}
}

func TestNodeChildAddedDuringStepIsDeferred(t *testing.T) {
	k := NewKernel()
	n := NewNode(k)

	var late *Subroutine
	lateRan := false
	first := NewSubroutine(k, func(*Generator) any {
		late = NewSubroutine(k, func(*Generator) any {
			lateRan = true
			return nil
		})
		n.Add(late)
		return nil
	})
	n.Add(first)

	n.Step()
	if lateRan {
		t.Fatalf("child added mid-step ran during the same step")
	}

	n.Step()
	if !lateRan {
		t.Errorf("child added mid-step did not run on the following step")
	}
}
