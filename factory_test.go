package coopflow

import "testing"

func TestDefaultFactoryAssignsDefaultNames(t *testing.T) {
	k := NewKernel()
	b := k.Factory().NewBarrier()
	if b.Name() == "" {
		t.Errorf("NewBarrier() left Name() empty")
	}
}

func TestDefaultFactoryNamedOverridesDefault(t *testing.T) {
	k := NewKernel()
	f := k.Factory()
	b := f.NewBarrier()
	f.Named(b.Transient, "spawn-barrier")
	if b.Name() != "spawn-barrier" {
		t.Errorf("Name() = %q after Named, want %q", b.Name(), "spawn-barrier")
	}
}

func TestDefaultFactoryPublishesCompletionEvents(t *testing.T) {
	k := NewKernel()
	ch := make(chan CompletionEvent, 4)
	df := k.Factory().(*DefaultFactory)
	df.WithPublisher(NewChannelPublisher(ch))

	sub := df.Named(df.NewSubroutine(func(*Generator) any { return nil }).Transient, "demo-sub")
	sub.Complete()

	select {
	case ev := <-ch:
		if ev.Name != "demo-sub" {
			t.Errorf("CompletionEvent.Name = %q, want %q", ev.Name, "demo-sub")
		}
	default:
		t.Errorf("no completion event published")
	}
}
