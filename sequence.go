package coopflow

// Sequence is an ordered queue of child generators stepped one at a
// time (§4.5): the head of the queue is stepped once per tick while it
// is active. A head that has completed is popped on the next Step call,
// together with any further inactive heads behind it, in a loop (a
// trampoline, not recursion, so long runs of already-completed children
// do not grow the call stack — §5's bounded re-entry tolerance), and the
// first active head found is stepped. A Sequence completes once its
// queue drains.
type Sequence struct {
	*Generator
	queue []Stepper
}

// NewSequence constructs an empty, running Sequence owned by kernel.
func NewSequence(kernel *Kernel) *Sequence {
	return &Sequence{Generator: NewGenerator(kernel)}
}

// Add appends child to the back of the queue. Children added mid-run,
// including from within a completion handler fired during the current
// Step, are appended and reached in due course.
func (s *Sequence) Add(child Stepper) {
	if child == nil {
		s.log().Error("Add called with nil child", "sequence", s.Name())
		return
	}
	s.queue = append(s.queue, child)
}

// Step advances the head of the queue. If the head is still active it
// is stepped once. If the head is inactive (already completed, or
// completed by something other than its own Step — e.g. CompleteAfter)
// it is popped without being stepped, and the new head is considered
// in the same call. An empty queue completes the Sequence.
func (s *Sequence) Step() {
	if !s.CanStep() {
		return
	}
	for {
		if len(s.queue) == 0 {
			s.MarkStepped()
			s.Complete()
			return
		}
		head := s.queue[0]
		if head.Active() {
			head.Step()
			s.MarkStepped()
			return
		}
		s.queue = s.queue[1:]
	}
}

// Remaining returns a snapshot of the queue, head first.
func (s *Sequence) Remaining() []Stepper {
	out := make([]Stepper, len(s.queue))
	copy(out, s.queue)
	return out
}
