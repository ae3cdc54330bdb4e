package fitness

import (
	"testing"

	"xivcraft/internal/action"
	"xivcraft/internal/genome"
	"xivcraft/internal/sim"
)

func cookbookSynth() *sim.Synth {
	return &sim.Synth{
		Crafter: sim.Crafter{
			Level: 54, Craftsmanship: 285, Control: 249, CP: 309,
			Actions: []action.Action{action.MuscleMemory, action.StandardTouch, action.BasicSynth, action.MastersMend},
		},
		Recipe: sim.Recipe{
			BaseLevel: 40, Level: 40, Difficulty: 138, Durability: 60,
			StartQuality: 0, MaxQuality: 3500,
			ProgressDivider: 50, QualityDivider: 30,
		},
		MaxTrickUses: 0,
	}
}

// Scenario 4: an empty genome decodes to no actions and should be far
// from feasible, yielding a deeply negative fitness.
func TestEmptyGenomeYieldsNegativeFitness(t *testing.T) {
	synth := cookbookSynth()
	result := Evaluate(synth, genome.Genome{})

	if result.Fitness >= 0 {
		t.Errorf("expected negative fitness for an empty genome, got %d", result.Fitness)
	}
	if result.Violations.ProgressOK {
		t.Errorf("expected progress violation for a genome with no actions")
	}
}

// Scenario 5: trailing genome entries after an early terminal step must
// not affect the final, already-terminal state.
func TestTerminalStateStopsReplay(t *testing.T) {
	synth := cookbookSynth()
	synth.Recipe.Difficulty = 1 // trivially satisfied by the first action

	short := genome.Genome{1}
	long := genome.Genome{1, 2, 3, 2, 3, 2, 3}

	rShort := Evaluate(synth, short)
	rLong := Evaluate(synth, long)

	if rShort.Final.ProgressState != rLong.Final.ProgressState {
		t.Errorf("expected trailing genes past terminality to be ignored: %d vs %d",
			rShort.Final.ProgressState, rLong.Final.ProgressState)
	}
}

func TestHighestPossibleFitnessFormula(t *testing.T) {
	synth := cookbookSynth()
	got := HighestPossible(synth)
	want := synth.Recipe.Difficulty + 5*synth.Recipe.MaxQuality
	if got != want {
		t.Errorf("expected highest possible fitness %d, got %d", want, got)
	}
}

// A genome that leaves full durability untouched but fails on progress
// alone must not have its durability "shortfall" subtract from the
// penalty total.
func TestDurabilityShortfallClampsAtZeroWhenDurabilityIsHealthy(t *testing.T) {
	synth := cookbookSynth()
	result := Evaluate(synth, genome.Genome{})

	if result.Final.DurabilityState != synth.Recipe.Durability {
		t.Fatalf("expected an empty genome to leave durability untouched, got %d", result.Final.DurabilityState)
	}
	if result.Violations.DurabilityOK {
		t.Fatalf("expected durability violation alongside the progress violation")
	}

	penalty := calculatePenalties(synth, result.Final, result.Violations)
	progressShortfall := float64(synth.Recipe.Difficulty) / float64(synth.Recipe.Difficulty)
	if penalty < progressShortfall {
		t.Errorf("expected the healthy-durability shortfall to contribute at least 0, got total penalty %v below the progress-only term %v", penalty, progressShortfall)
	}
}

func TestFeasibleCompletionOutscoresInfeasible(t *testing.T) {
	synth := cookbookSynth()
	feasible := genome.Genome{1, 2, 3} // MuscleMemory, StandardTouch, BasicSynth
	infeasible := genome.Genome{4}     // MastersMend alone: no progress at all

	rFeasible := Evaluate(synth, feasible)
	rInfeasible := Evaluate(synth, infeasible)

	if rFeasible.Fitness <= rInfeasible.Fitness {
		t.Errorf("expected a feasible-leaning sequence to score higher: %d vs %d",
			rFeasible.Fitness, rInfeasible.Fitness)
	}
}
