// ABOUTME: Mutable per-step simulation record and its construction from a Synth
// ABOUTME: step() below returns a new State by value; nothing here is mutated in place across calls

package sim

import (
	"xivcraft/internal/action"
	"xivcraft/internal/effect"
)

// State is the per-step simulation record. It holds a non-owning pointer
// back to the Synth it was built from; everything else is plain value
// data, so assigning a State is already the "clone per step" the
// simulator needs.
type State struct {
	Synth *Synth

	Step     int
	LastStep int
	Action   action.Action // last action applied; Unknown means none yet

	DurabilityState int
	CPState         int
	BonusMaxCP      int
	QualityState    int
	ProgressState   int
	WastedActions   float64

	TrickUses         int
	NameOfElementUses int
	Reliability       float64 // starts at 1.0 (100%), scaled down by success probability

	CountDowns effect.Table
	CountUps   effect.Table
	Condition  Condition

	TouchComboStep int

	// Internal bookkeeping, refreshed every step.
	IQCount         int8
	Control         int
	QualityGain     int
	BaseProgressGain int
	BaseQualityGain  int
	Success          bool

	probs conditionProbs
}

// NewState builds the initial State for a replay of synth. The caller must
// not mutate synth afterward; State only borrows it.
//
// CountUps starts with an InnerQuiet entry present at 0 stacks, mirroring
// the source's From<&Synth> for State seeding the stack tracker up front.
// Inner Quiet's own multiplier and Byregot's Blessing read the raw stack
// count directly (step.go), so seeding at 0 here means a sequence that
// never opens with Reflect starts from true zero stacks, same as a fresh
// synthesis in-game; Reflect then grants its first stack via an absolute
// Insert(InnerQuiet, 1) rather than an increment.
func NewState(synth *Synth) State {
	s := State{
		Synth:           synth,
		Condition:       ConditionNormal,
		Reliability:     1.0,
		DurabilityState: synth.Recipe.Durability,
		CPState:         synth.Crafter.CP,
		QualityState:    synth.Recipe.StartQuality,
		probs:           newConditionProbs(),
	}
	s.CountUps.Insert(action.InnerQuiet, 0)
	return s
}

// Terminal reports whether the replay has reached a stopping condition:
// progress has met the recipe's difficulty, durability has run out, or CP
// has gone negative.
func (s *State) Terminal() bool {
	return s.ProgressState >= s.Synth.Recipe.Difficulty ||
		s.DurabilityState <= 0 ||
		s.CPState < 0
}

// Violations is the set of feasibility checks the fitness evaluator (C4)
// consults.
type Violations struct {
	ProgressOK    bool
	CPOK          bool
	DurabilityOK  bool
	TrickOK       bool
	ReliabilityOK bool
}

// Feasible reports whether every violation check passed.
func (v Violations) Feasible() bool {
	return v.ProgressOK && v.CPOK && v.DurabilityOK && v.TrickOK && v.ReliabilityOK
}

// CheckViolations evaluates the five feasibility predicates against the
// current state.
func (s *State) CheckViolations() Violations {
	progressOK := s.ProgressState >= s.Synth.Recipe.Difficulty
	cpOK := s.CPState >= 0
	durabilityOK := false
	if s.DurabilityState >= -5 && progressOK {
		if s.Action == action.Unknown {
			durabilityOK = s.DurabilityState >= 0
		} else {
			d := action.Describe(s.Action)
			durabilityOK = d.DurabilityCost == 10 || s.DurabilityState >= 0
		}
	}
	trickOK := s.TrickUses <= s.Synth.MaxTrickUses
	reliabilityOK := s.Reliability*100 > float64(s.Synth.ReliabilityIndex)

	return Violations{
		ProgressOK:    progressOK,
		CPOK:          cpOK,
		DurabilityOK:  durabilityOK,
		TrickOK:       trickOK,
		ReliabilityOK: reliabilityOK,
	}
}
