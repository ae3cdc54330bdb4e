package genome

import (
	"math/rand"
	"testing"

	"xivcraft/internal/action"
	"xivcraft/internal/sim"
)

func testSynth() *sim.Synth {
	return &sim.Synth{
		Crafter: sim.Crafter{
			Level: 54, Craftsmanship: 285, Control: 249, CP: 309,
			Actions: []action.Action{action.BasicSynth, action.BasicTouch, action.MastersMend},
		},
		Recipe: sim.Recipe{
			BaseLevel: 40, Level: 40, Difficulty: 138, Durability: 60,
			StartQuality: 0, MaxQuality: 3500,
			ProgressDivider: 50, QualityDivider: 30,
		},
	}
}

func TestBuilderLengthBounds(t *testing.T) {
	b := NewBuilder(testSynth())
	if b.MinLength < 2 {
		t.Errorf("expected MinLength >= 2, got %d", b.MinLength)
	}
	if b.MaxLength <= b.MinLength {
		t.Errorf("expected MaxLength > MinLength, got %d vs %d", b.MaxLength, b.MinLength)
	}
}

func TestBuildWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBuilder(testSynth())
	for i := 0; i < 50; i++ {
		g := b.Build(rng)
		if len(g) < b.MinLength || len(g) > b.MaxLength {
			t.Fatalf("genome length %d out of bounds [%d,%d]", len(g), b.MinLength, b.MaxLength)
		}
	}
}

func TestActionsStopsAtSentinel(t *testing.T) {
	synth := testSynth()
	g := Genome{1, 2, 0, 3}
	acts := g.Actions(synth)
	if len(acts) != 2 {
		t.Fatalf("expected 2 actions before sentinel, got %d", len(acts))
	}
	if acts[0] != action.BasicSynth || acts[1] != action.BasicTouch {
		t.Errorf("unexpected decoded actions: %v", acts)
	}
}

func TestActionsStopsAtOutOfRange(t *testing.T) {
	synth := testSynth()
	g := Genome{1, 99}
	acts := g.Actions(synth)
	if len(acts) != 1 {
		t.Fatalf("expected decode to stop at out-of-range index, got %d actions", len(acts))
	}
}

func TestMutateRespectsLengthBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b := NewBuilder(testSynth())
	m := NewMutator(b, 0.3)

	g := b.Build(rng)
	for i := 0; i < 100; i++ {
		g = m.Mutate(rng, g)
		if len(g) < b.MinLength || len(g) > b.MaxLength {
			t.Fatalf("mutated genome length %d out of bounds [%d,%d]", len(g), b.MinLength, b.MaxLength)
		}
	}
}

func TestMutateDoesNotAliasInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := NewBuilder(testSynth())
	m := NewMutator(b, 0.5)

	g := Genome{1, 1, 1, 1, 1, 1, 1, 1}
	orig := make(Genome, len(g))
	copy(orig, g)

	_ = m.Mutate(rng, g)
	for i := range g {
		if g[i] != orig[i] {
			t.Fatalf("Mutate must not modify its input in place")
		}
	}
}
