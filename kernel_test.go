package coopflow

import (
	"testing"
	"time"
)

func TestKernelUpdateAccumulatesTime(t *testing.T) {
	k := NewKernel()
	k.Update(10 * time.Millisecond)
	k.Update(5 * time.Millisecond)

	if k.Time() != 15*time.Millisecond {
		t.Errorf("Time() = %s, want 15ms", k.Time())
	}
	if k.LastDelta() != 5*time.Millisecond {
		t.Errorf("LastDelta() = %s, want 5ms", k.LastDelta())
	}
}

func TestKernelStepNumberIncrementsPerStep(t *testing.T) {
	k := NewKernel()
	k.Step()
	k.Step()
	if k.StepNumber() != 2 {
		t.Errorf("StepNumber() = %d, want 2", k.StepNumber())
	}
}

func TestKernelBreakFlowStopsStepping(t *testing.T) {
	k := NewKernel()
	k.Step()
	k.BreakFlow()
	k.Step()
	k.Step()
	if k.StepNumber() != 1 {
		t.Errorf("StepNumber() = %d after BreakFlow, want 1 (steps after break are no-ops)", k.StepNumber())
	}
}

func TestKernelWaitSuppressesStepsUntilDeadline(t *testing.T) {
	k := NewKernel()
	k.Wait(100 * time.Millisecond)

	k.Update(50 * time.Millisecond)
	if k.StepNumber() != 0 {
		t.Fatalf("StepNumber() = %d before wait deadline, want 0", k.StepNumber())
	}

	k.Update(50 * time.Millisecond)
	if k.StepNumber() != 1 {
		t.Errorf("StepNumber() = %d once wait deadline reached, want 1", k.StepNumber())
	}

	k.Update(10 * time.Millisecond)
	if k.StepNumber() != 2 {
		t.Errorf("StepNumber() = %d after deadline cleared, want 2", k.StepNumber())
	}
}

func TestKernelRootStepsActiveChildren(t *testing.T) {
	k := NewKernel()
	seq := k.Factory().NewSequence()
	k.Root().Add(seq)

	stepped := 0
	seq.Add(k.Factory().NewSubroutine(func(*Generator) any {
		stepped++
		return nil
	}))

	k.Step()
	if stepped != 1 {
		t.Errorf("subroutine ran %d times, want 1", stepped)
	}
}
