package presets

import (
	"testing"

	"xivcraft/internal/action"
)

func TestLoadSkybuildersCookie(t *testing.T) {
	synth, err := Load("skybuilders-sesame-cookie")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if synth.Recipe.Difficulty != 138 || synth.Recipe.MaxQuality != 3500 {
		t.Errorf("unexpected recipe fields: %+v", synth.Recipe)
	}
	if synth.Crafter.Level != 54 {
		t.Errorf("unexpected crafter level: %d", synth.Crafter.Level)
	}
	if len(synth.Crafter.Actions) == 0 || synth.Crafter.Actions[0] != action.BasicSynth2 {
		t.Errorf("expected first action to resolve to basicSynth2, got %v", synth.Crafter.Actions)
	}
}

func TestLoadUnknownNameErrors(t *testing.T) {
	if _, err := Load("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown preset name")
	}
}

func TestNamesListsAllPresets(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) < 2 {
		t.Errorf("expected at least 2 presets, got %d", len(names))
	}
}
