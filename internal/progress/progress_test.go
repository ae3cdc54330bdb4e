package progress

import (
	"testing"

	"xivcraft/internal/action"
	"xivcraft/internal/sim"
)

func TestFromStateReportsFeasibility(t *testing.T) {
	synth := &sim.Synth{
		Crafter: sim.Crafter{Level: 10, Craftsmanship: 20, Control: 20, CP: 10},
		Recipe:  sim.Recipe{BaseLevel: 1, Level: 1, Difficulty: 1, Durability: 60, MaxQuality: 100, ProgressDivider: 1, QualityDivider: 1},
	}
	s := sim.NewState(synth)
	s = sim.Step(s, action.BasicSynth)

	snap := FromState(s)
	if !snap.Feasible {
		t.Errorf("expected a completed recipe to be feasible, got %+v", snap)
	}
}

func TestRunIDIsNonEmptyAndUnique(t *testing.T) {
	a, b := RunID(), RunID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty run IDs")
	}
	if a == b {
		t.Error("expected distinct run IDs across calls")
	}
}
