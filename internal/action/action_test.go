package action

import "testing"

func TestByShortName(t *testing.T) {
	a, ok := ByShortName("basicSynth2")
	if !ok {
		t.Fatalf("expected basicSynth2 to resolve")
	}
	if a != BasicSynth2 {
		t.Errorf("expected BasicSynth2, got %v", a)
	}

	if _, ok := ByShortName("notAnAction"); ok {
		t.Errorf("expected unknown identifier to fail to resolve")
	}
}

func TestDescribeMuscleMemory(t *testing.T) {
	d := Describe(MuscleMemory)
	if d.Type != Countdown || d.ActiveTurns != 5 {
		t.Errorf("expected MuscleMemory to be a 5-turn countdown, got %+v", d)
	}
	if d.ProgressIncreaseMultiplier != 3.0 {
		t.Errorf("expected progress multiplier 3.0, got %v", d.ProgressIncreaseMultiplier)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for a := Action(1); a < numActions; a++ {
		name := a.String()
		if name == "" || name == "unknown" {
			t.Errorf("action %d has empty or unknown name", a)
		}
		got, ok := ByShortName(name)
		if !ok || got != a {
			t.Errorf("round trip failed for action %d (%s)", a, name)
		}
	}
}

func TestUnknownIsZeroValue(t *testing.T) {
	var a Action
	if a != Unknown {
		t.Errorf("expected zero value to be Unknown")
	}
	if a.String() != "unknown" {
		t.Errorf("expected Unknown.String() == \"unknown\", got %q", a.String())
	}
}
