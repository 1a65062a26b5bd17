package coopflow

// Node is a bag of child generators stepped each tick (§3, §4.10):
// every active child is stepped once per Node.Step call, in insertion
// order. Node never auto-completes; applications complete it explicitly
// if they ever want to tear it down. The Kernel never completes its
// root.
//
// A Node is itself a Generator, so it can be nested inside another Node,
// a Sequence, or the kernel's root.
type Node struct {
	*Generator
	children []Stepper
}

// NewNode constructs an empty, running Node owned by kernel.
func NewNode(kernel *Kernel) *Node {
	return &Node{Generator: NewGenerator(kernel)}
}

// Add appends child to the node's children, in insertion order. A
// completion listener removes child from the node automatically
// (§4.10's "children removed as they complete").
func (n *Node) Add(child Stepper) {
	if child == nil {
		n.log().Error("Add called with nil child", "node", n.Name())
		return
	}
	n.children = append(n.children, child)
	child.OnCompleted(func(Transient) {
		n.remove(child)
	})
}

func (n *Node) remove(child Stepper) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Children returns a snapshot of the node's current children, safe to
// range over even if the node mutates during iteration.
func (n *Node) Children() []Stepper {
	out := make([]Stepper, len(n.children))
	copy(out, n.children)
	return out
}

// Step steps each active child once, in insertion order. A snapshot of
// the children collection is taken before iteration (§4.1) so that
// completion-driven removal during the iteration does not invalidate
// traversal, and children added during iteration are deferred to the
// next step.
func (n *Node) Step() {
	if !n.CanStep() {
		return
	}
	for _, child := range n.Children() {
		if child.Active() {
			child.Step()
		}
	}
	n.MarkStepped()
}
