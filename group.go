package coopflow

// Group is a non-stepping container used solely for lifetime bundling
// (§4.10): completing the Group does not force-complete its members,
// and Group never steps them either. It exists purely so application
// code can hold a named, inspectable collection of transients without
// those transients participating in the step graph via the Group
// itself (they still step if and only if something else, e.g. a Node,
// steps them).
type Group struct {
	*Generator
	members []Completable
}

// NewGroup constructs an empty, running Group owned by kernel.
func NewGroup(kernel *Kernel) *Group {
	return &Group{Generator: NewGenerator(kernel)}
}

// Add appends member to the group. A completion listener drops the
// reference once member completes, so a long-lived Group does not
// accumulate dead entries (§9's retention-cycle note).
func (g *Group) Add(member Completable) {
	if member == nil {
		g.log().Error("Add called with nil member", "group", g.Name())
		return
	}
	g.members = append(g.members, member)
	member.OnCompleted(func(Transient) {
		g.removeMember(member)
	})
}

func (g *Group) removeMember(member Completable) {
	for i, m := range g.members {
		if m == member {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return
		}
	}
}

// Members returns a snapshot of the group's current members.
func (g *Group) Members() []Completable {
	out := make([]Completable, len(g.members))
	copy(out, g.members)
	return out
}
