package logsink

import "testing"

func TestCollectingSinkRecordsBySeverity(t *testing.T) {
	c := NewCollectingSink()
	c.Info("hello", "k", "v")
	c.Warn("careful")
	c.Error("boom")
	c.Verbose(2, "chatty")

	for _, level := range []string{"info", "warn", "error", "verbose"} {
		if !c.HasLevel(level) {
			t.Errorf("HasLevel(%q) = false, want true", level)
		}
	}
	if len(c.Records) != 4 {
		t.Errorf("len(Records) = %d, want 4", len(c.Records))
	}
}

func TestNoopSinkDiscardsEverything(t *testing.T) {
	s := Noop()
	s.Info("x")
	s.Warn("y")
	s.Error("z")
	s.Verbose(1, "w")
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if ParseLevel("nonsense") != ParseLevel("info") {
		t.Errorf("ParseLevel of an unknown string did not default to info")
	}
}
