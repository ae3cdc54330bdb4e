// ABOUTME: Genome replay and penalized fitness scoring
// ABOUTME: Grounded on the reference solver's fitness function and xiv_model's check_violations

package fitness

import (
	"math"

	"xivcraft/internal/genome"
	"xivcraft/internal/sim"
)

// Result carries the final replayed state alongside its scalar fitness,
// for callers (the GA driver, the progress reporter) that want both.
type Result struct {
	Fitness    int
	Final      sim.State
	Violations sim.Violations
}

// Evaluate replays g through the simulator step function, stopping at the
// first terminal state (or when the genome runs out of actions), and
// scores the result per §4.2.
func Evaluate(synth *sim.Synth, g genome.Genome) Result {
	actions := g.Actions(synth)

	state := sim.NewState(synth)
	for _, a := range actions {
		if state.Terminal() {
			break
		}
		state = sim.Step(state, a)
	}

	violations := state.CheckViolations()
	fitness := Score(synth, state, violations)

	return Result{Fitness: fitness, Final: state, Violations: violations}
}

// Score computes the penalized integer fitness for a final replayed
// state, per §4.2's penalty/base/safety-margin formula.
func Score(synth *sim.Synth, state sim.State, violations sim.Violations) int {
	penalties := calculatePenalties(synth, state, violations) * 10000

	var base float64
	if synth.SolverVars.SolveForCompletion {
		base = float64(state.CPState)*synth.SolverVars.RemainderCPFitnessWeight +
			float64(state.DurabilityState)*synth.SolverVars.RemainderDurFitnessWeight
	} else {
		base = float64(min(state.QualityState, synth.Recipe.MaxQuality))
	}

	fitnessValue := base - penalties

	if violations.ProgressOK && float64(state.QualityState) >= float64(synth.Recipe.MaxQuality)*(1+synth.Recipe.SafetyMarginPercent/100) {
		fitnessValue = math.Floor(fitnessValue * (1 + 4/float64(maxInt(state.Step, 1))))
	}

	return int(fitnessValue)
}

// calculatePenalties sums wasted-action cost plus a shortfall term for
// every failed violation check, each in the unit the reference solver
// scales by 10000 before subtracting from the base fitness.
func calculatePenalties(synth *sim.Synth, state sim.State, v sim.Violations) float64 {
	penalty := state.WastedActions / 20.0

	if !v.ProgressOK {
		shortfall := synth.Recipe.Difficulty - state.ProgressState
		penalty += float64(shortfall) / float64(maxInt(synth.Recipe.Difficulty, 1))
	}
	if !v.CPOK {
		penalty += float64(-state.CPState) / float64(maxInt(synth.Crafter.CP, 1))
	}
	if !v.DurabilityOK {
		// DurabilityOK is false whenever ProgressOK is false too, even with
		// durability to spare, so the shortfall must be clamped at 0 rather
		// than taken as -state.DurabilityState directly.
		shortfall := maxInt(-state.DurabilityState, 0)
		penalty += float64(shortfall) / float64(maxInt(synth.Recipe.Durability, 1))
	}
	if !v.TrickOK {
		penalty += float64(state.TrickUses - synth.MaxTrickUses)
	}
	if !v.ReliabilityOK {
		penalty += float64(synth.ReliabilityIndex) - state.Reliability*100
	}

	return penalty
}

// HighestPossible and LowestPossible bound the fitness range a GA run can
// report. The GA driver seeds its best-so-far fitness with LowestPossible.
func HighestPossible(synth *sim.Synth) int {
	return synth.Recipe.Difficulty + 5*synth.Recipe.MaxQuality
}

func LowestPossible() int {
	return math.MinInt
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
