package driver

import (
	"context"
	"testing"
	"time"
)

type fakeStepper struct {
	updates int
	panics  bool
}

func (f *fakeStepper) Update(delta time.Duration) {
	f.updates++
	if f.panics {
		panic("tick exploded")
	}
}

func TestTickerCallsUpdatePeriodically(t *testing.T) {
	target := &fakeStepper{}
	d := New(target, 10*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()
	d.Run(ctx)

	<-d.Stopped()
	if target.updates < 3 {
		t.Errorf("Update called %d times in 55ms at a 10ms rate, want at least 3", target.updates)
	}
}

func TestTickerRecoversFromPanickingTarget(t *testing.T) {
	target := &fakeStepper{panics: true}
	var recovered any
	d := New(target, 10*time.Millisecond, func(r any) { recovered = r })

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()
	d.Run(ctx)

	<-d.Stopped()
	if recovered == nil {
		t.Errorf("onPanic was never invoked despite the target panicking every tick")
	}
	if target.updates < 2 {
		t.Errorf("loop stopped ticking after a panic; updates = %d, want at least 2", target.updates)
	}
}
