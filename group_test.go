package coopflow

import "testing"

func TestGroupDoesNotForceCompleteMembers(t *testing.T) {
	k := NewKernel()
	g := NewGroup(k)
	member := NewTransient(k)
	g.Add(member)

	g.Complete()
	if !member.Active() {
		t.Errorf("member completed when its Group was completed")
	}
}

func TestGroupDropsMembersOnTheirOwnCompletion(t *testing.T) {
	k := NewKernel()
	g := NewGroup(k)
	member := NewTransient(k)
	g.Add(member)

	member.Complete()
	if len(g.Members()) != 0 {
		t.Errorf("completed member not dropped from Members(), got %v", g.Members())
	}
}
