package coopflow

// Barrier completes once every member added to it has completed
// (§4.6): an all-of join. A member that is already inactive at the
// moment it would be added is not added at all — it has already done
// its part. A Barrier created with no members, or whose members are
// never added, remains active indefinitely; there is no self-completion
// on construction (Expansion D). Barrier has no step behavior of its
// own and inherits Generator's no-op Step.
type Barrier struct {
	*Generator
	members map[uint64]Completable
	nextID  uint64
}

// NewBarrier constructs an empty, running Barrier owned by kernel.
func NewBarrier(kernel *Kernel) *Barrier {
	return &Barrier{Generator: NewGenerator(kernel), members: make(map[uint64]Completable)}
}

// Add enrolls child as a member the barrier waits on. If child is
// already inactive, it is not enrolled (it has already satisfied its
// obligation). Otherwise a fire-once listener is installed that drops
// child from the member set on completion and, if the set becomes
// empty as a result, completes the barrier.
func (b *Barrier) Add(child Completable) {
	if child == nil {
		b.log().Error("Add called with nil child", "barrier", b.Name())
		return
	}
	if !child.Active() {
		return
	}
	id := b.nextID
	b.nextID++
	b.members[id] = child
	child.OnCompleted(func(Transient) {
		delete(b.members, id)
		if len(b.members) == 0 {
			b.Complete()
		}
	})
}

// Remaining reports how many members are still outstanding.
func (b *Barrier) Remaining() int { return len(b.members) }
