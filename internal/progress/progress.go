// ABOUTME: Converts simulator State into the compact snapshot record external callers see
// ABOUTME: Grounded on the reference solver's progressTracker, generalized to report simulator state instead of playlist fitness

package progress

import (
	"github.com/google/uuid"

	"xivcraft/internal/sim"
)

// Snapshot is the per-generation state summary described in §4.5: quality,
// durability, cp, progress, feasibility, the full Violations record,
// current condition, and bonus max CP. HQPercent is left at zero; no
// high-quality formula is wired in.
type Snapshot struct {
	Quality      int
	Durability   int
	CP           int
	Progress     int
	Feasible     bool
	Violations   sim.Violations
	Condition    sim.Condition
	BonusMaxCP   int
	HQPercent    float64
}

// FromState builds a Snapshot from a replayed State.
func FromState(state sim.State) Snapshot {
	v := state.CheckViolations()
	return Snapshot{
		Quality:    state.QualityState,
		Durability: state.DurabilityState,
		CP:         state.CPState,
		Progress:   state.ProgressState,
		Feasible:   v.Feasible(),
		Violations: v,
		Condition:  state.Condition,
		BonusMaxCP: state.BonusMaxCP,
		HQPercent:  0,
	}
}

// RunID stamps a solver run with a fresh identifier, for correlating
// progress events emitted over the lifetime of one driver.
func RunID() string {
	return uuid.NewString()
}
