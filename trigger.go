package coopflow

// Trigger completes the instant any one of its members completes
// (§4.7): an any-of join, the dual of Barrier. The remaining members
// are not force-completed — they keep running independently of the
// trigger's own completion; Trigger merely observes them. Once the
// trigger itself has completed, further Add calls are no-ops: there is
// nothing left to race. Trigger has no step behavior of its own and
// inherits Generator's no-op Step.
type Trigger struct {
	*Generator
	members map[uint64]Completable
	nextID  uint64
}

// NewTrigger constructs an empty, running Trigger owned by kernel.
func NewTrigger(kernel *Kernel) *Trigger {
	return &Trigger{Generator: NewGenerator(kernel), members: make(map[uint64]Completable)}
}

// Add enrolls child as a member the trigger races. If the trigger has
// already completed, Add is a no-op. If child is already inactive at
// enrollment time, it has already satisfied the any-of condition and
// the trigger completes immediately. Otherwise a fire-once listener is
// installed that drops child from the member set and completes the
// trigger (idempotently, so only the first completer has any effect).
func (t *Trigger) Add(child Completable) {
	if !t.Active() {
		return
	}
	if child == nil {
		t.log().Error("Add called with nil child", "trigger", t.Name())
		return
	}
	if !child.Active() {
		t.Complete()
		return
	}
	id := t.nextID
	t.nextID++
	t.members[id] = child
	child.OnCompleted(func(Transient) {
		delete(t.members, id)
		t.Complete()
	})
}

// Remaining reports how many members are still being raced.
func (t *Trigger) Remaining() int { return len(t.members) }
